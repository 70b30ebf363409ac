package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"zip-league-api/packages/core/handlers"
	"zip-league-api/packages/core/models"
	"zip-league-api/packages/core/services"
	"zip-league-api/packages/core/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testAdminKey = "s3cret"

func newTestRouter(t *testing.T, adminKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	opts := DefaultOptions()
	opts.AdminAPIKey = adminKey
	module := NewModule(db, opts)

	r := gin.New()
	module.SetupRoutes(r)
	return r
}

func do(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func createPlayers(t *testing.T, r http.Handler, n int) []models.Player {
	t.Helper()
	players := make([]models.Player, n)
	for i := range players {
		w := do(r, http.MethodPost, "/players", models.CreatePlayerRequest{
			Name:  fmt.Sprintf("Player %d", i+1),
			Email: fmt.Sprintf("p%d@league.test", i+1),
		}, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("create player: %d %s", w.Code, w.Body.String())
		}
		decode(t, w, &players[i])
	}
	return players
}

func matchBody(p []models.Player, team1Score, team2Score int) models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Team1Player1ID: p[0].ID,
		Team1Player2ID: p[1].ID,
		Team2Player1ID: p[2].ID,
		Team2Player2ID: p[3].ID,
		Team1Score:     team1Score,
		Team2Score:     team2Score,
	}
}

func TestPlayerRoutes(t *testing.T) {
	r := newTestRouter(t, "")
	createPlayers(t, r, 2)

	w := do(r, http.MethodPost, "/players", models.CreatePlayerRequest{Name: "Copy", Email: "P1@league.test"}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/players", map[string]string{"name": "No Email"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing email: %d", w.Code)
	}

	w = do(r, http.MethodGet, "/players?sort=skill_score&direction=asc", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("rankings: %d %s", w.Code, w.Body.String())
	}
	var page models.PaginatedPlayersResponse
	decode(t, w, &page)
	if page.Total != 2 || len(page.Data) != 2 || page.Data[0].Rank != 1 {
		t.Fatalf("rankings page = %+v", page)
	}

	for _, path := range []string{"/players?sort=name", "/players?direction=up", "/players?page=0", "/players/abc"} {
		if w := do(r, http.MethodGet, path, nil, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("GET %s: %d, want 400", path, w.Code)
		}
	}

	if w := do(r, http.MethodGet, "/players/999", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing player: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/players/1/history?period=abc", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad history period: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/players/1/history", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("history: %d %s", w.Code, w.Body.String())
	}
}

func TestMatchRoutes(t *testing.T) {
	r := newTestRouter(t, "")
	p := createPlayers(t, r, 4)

	w := do(r, http.MethodPost, "/matches", matchBody(p, 10, 4), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create match: %d %s", w.Code, w.Body.String())
	}
	var m models.Match
	decode(t, w, &m)
	if m.EloChange != 16 || m.Result != models.ResultTeam1Win || m.Period != time.Now().UTC().Year() {
		t.Fatalf("match = %+v", m)
	}

	// same key again returns the stored match
	retry := matchBody(p, 10, 4)
	retry.IdempotencyKey = &m.IdempotencyKey
	w = do(r, http.MethodPost, "/matches", retry, nil)
	var again models.Match
	decode(t, w, &again)
	if w.Code != http.StatusCreated || again.ID != m.ID {
		t.Fatalf("idempotent retry: %d, match %d", w.Code, again.ID)
	}

	tests := []struct {
		name string
		body models.CreateMatchRequest
		code int
	}{
		{"tie", matchBody(p, 5, 5), http.StatusBadRequest},
		{"duplicate player", matchBody([]models.Player{p[0], p[1], p[2], p[0]}, 10, 5), http.StatusBadRequest},
		{"unknown player", matchBody([]models.Player{p[0], p[1], p[2], {ID: 999}}, 10, 5), http.StatusNotFound},
		{"missing player", matchBody([]models.Player{p[0], p[1], p[2], {}}, 10, 5), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, http.MethodPost, "/matches", tt.body, nil); w.Code != tt.code {
				t.Fatalf("code = %d, want %d (%s)", w.Code, tt.code, w.Body.String())
			}
		})
	}

	w = do(r, http.MethodGet, "/matches/"+strconv.Itoa(int(m.ID)), nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get match: %d", w.Code)
	}
	var detail models.MatchDetail
	decode(t, w, &detail)
	if detail.Match.ID != m.ID || detail.Odds.AlternativeChange != 16 {
		t.Fatalf("detail = %+v", detail)
	}

	if w := do(r, http.MethodGet, "/matches/999", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing match: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/matches/abc", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad match id: %d", w.Code)
	}

	w = do(r, http.MethodGet, "/matches?player_id="+strconv.Itoa(int(p[0].ID)), nil, nil)
	var list models.PaginatedMatchResponse
	decode(t, w, &list)
	if w.Code != http.StatusOK || list.Total != 1 {
		t.Fatalf("list matches: %d total %d", w.Code, list.Total)
	}

	if w := do(r, http.MethodGet, "/matches/recent?limit=5", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("recent matches: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/elo-history/recent?limit=0", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("recent elo changes with limit 0: %d", w.Code)
	}
	w = do(r, http.MethodGet, "/elo-history/recent", nil, nil)
	var changes []models.EloChange
	decode(t, w, &changes)
	if w.Code != http.StatusOK || len(changes) != 4 {
		t.Fatalf("recent elo changes: %d, %d entries", w.Code, len(changes))
	}
}

func TestArchiveAndStatsRoutes(t *testing.T) {
	r := newTestRouter(t, "")

	if w := do(r, http.MethodGet, "/archives", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("archives: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/archives/1999", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("missing archive: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/archives/abc", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad archive period: %d", w.Code)
	}

	w := do(r, http.MethodGet, "/stats", nil, nil)
	var stats models.Stats
	decode(t, w, &stats)
	if w.Code != http.StatusOK || stats.CurrentPeriod != time.Now().UTC().Year() {
		t.Fatalf("stats: %d %+v", w.Code, stats)
	}
}

func TestAdminRoutesDisabledWithoutKey(t *testing.T) {
	r := newTestRouter(t, "")
	if w := do(r, http.MethodPost, "/admin/recompute", nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("admin route without key configured: %d", w.Code)
	}
}

func TestAdminRoutes(t *testing.T) {
	r := newTestRouter(t, testAdminKey)
	p := createPlayers(t, r, 4)
	do(r, http.MethodPost, "/matches", matchBody(p, 10, 4), nil)
	auth := map[string]string{handlers.AdminKeyHeader: testAdminKey}

	if w := do(r, http.MethodPost, "/admin/recompute", nil, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("recompute without key: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/admin/verify", nil, map[string]string{handlers.AdminKeyHeader: "wrong"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("verify with wrong key: %d", w.Code)
	}

	w := do(r, http.MethodPost, "/admin/recompute", nil, auth)
	if w.Code != http.StatusOK {
		t.Fatalf("recompute: %d %s", w.Code, w.Body.String())
	}
	var result services.RecomputeResult
	decode(t, w, &result)
	if result.Period != time.Now().UTC().Year() || result.MatchesProcessed != 1 || result.PlayersReset != 4 {
		t.Fatalf("recompute result = %+v", result)
	}

	w = do(r, http.MethodGet, "/admin/verify", nil, auth)
	var report services.VerifyReport
	decode(t, w, &report)
	if w.Code != http.StatusOK || !report.Clean() || report.MatchesChecked != 1 {
		t.Fatalf("verify: %d %+v", w.Code, report)
	}

	current := time.Now().UTC().Year()
	w = do(r, http.MethodPost, "/admin/archives", models.ArchivePeriodRequest{Period: current}, auth)
	if w.Code != http.StatusConflict {
		t.Fatalf("archive current period: %d", w.Code)
	}
	w = do(r, http.MethodPost, "/admin/archives", models.ArchivePeriodRequest{Period: current - 1}, auth)
	if w.Code != http.StatusCreated {
		t.Fatalf("archive previous period: %d %s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodPost, "/admin/recompute", map[string]int{"period": current - 1}, auth)
	if w.Code != http.StatusConflict {
		t.Fatalf("recompute archived period: %d", w.Code)
	}
}
