package config

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SKILL_MEAN", "")
	t.Setenv("DECAY_GRACE_DAYS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rating.Skill.Mean != 25 || cfg.Rating.Decay.GraceDays != 7 {
		t.Fatalf("rating defaults = %+v", cfg.Rating)
	}
	if len(cfg.App.AllowOrigins) != 2 || cfg.App.AllowOrigins[1] != "http://b.test" {
		t.Fatalf("origins = %q", cfg.App.AllowOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SKILL_BETA", "5")
	t.Setenv("DECAY_GRACE_DAYS", "14")
	t.Setenv("DRIFT_CHECK_CRON", "@hourly")
	t.Setenv("ADMIN_API_KEY", "k")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rating.Skill.Beta != 5 || cfg.Rating.Decay.GraceDays != 14 {
		t.Fatalf("overrides not applied: %+v", cfg.Rating)
	}
	if cfg.Scheduler.DriftCheckSpec != "@hourly" || cfg.App.AdminAPIKey != "k" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_MAX_CONNS":           "many",
		"SKILL_TAU":              "x",
		"SKILL_UNCERTAINTY":      "0",
		"SKILL_DRAW_PROBABILITY": "1",
		"DECAY_DAILY_FACTOR":     "fast",
		"DECAY_GRACE_DAYS":       "1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("%s=%s accepted", key, value)
			}
		})
	}
}

func TestConnectDatabaseSQLite(t *testing.T) {
	cfg := &Config{}
	cfg.App.Env = "test"
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = "file:config_test?mode=memory&cache=shared"

	db, err := ConnectDatabase(cfg)
	if err != nil {
		t.Fatalf("ConnectDatabase: %v", err)
	}
	if DB != db {
		t.Fatalf("global DB not set")
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query: %v", err)
	}
}

func TestConnectDatabaseUnknownDriver(t *testing.T) {
	cfg := &Config{}
	cfg.DB.Driver = "oracle"
	if _, err := ConnectDatabase(cfg); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLoadConfigRejectsDecayOutsideRange(t *testing.T) {
	for _, value := range []string{"0", "1", "1.5", "-0.2"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("DECAY_DAILY_FACTOR", value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("DECAY_DAILY_FACTOR=%s accepted", value)
			}
		})
	}
	for _, value := range []string{"0", "-3"} {
		t.Run("grace "+value, func(t *testing.T) {
			t.Setenv("DECAY_GRACE_DAYS", value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("DECAY_GRACE_DAYS=%s accepted", value)
			}
		})
	}
}
