package migrations

import "gorm.io/gorm"

// GetCoreMigrations returns the PostgreSQL schema of the rating store.
func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_players_table",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(100) NOT NULL,
						email VARCHAR(255) NOT NULL,
						elo_rating INT NOT NULL DEFAULT 1000,
						skill_mean DOUBLE PRECISION NOT NULL DEFAULT 25,
						skill_uncertainty DOUBLE PRECISION NOT NULL DEFAULT 8.333333333333334
							CHECK (skill_uncertainty > 0),
						matches_played INT NOT NULL DEFAULT 0 CHECK (matches_played >= 0),
						matches_won INT NOT NULL DEFAULT 0 CHECK (matches_won >= 0),
						matches_lost INT NOT NULL DEFAULT 0 CHECK (matches_lost >= 0),
						last_match_date TIMESTAMPTZ NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					)
				`).Error; err != nil {
					return err
				}
				if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_players_email ON players(email)`).Error; err != nil {
					return err
				}
				return db.Exec(`CREATE INDEX IF NOT EXISTS idx_players_elo_rating ON players(elo_rating)`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS players CASCADE").Error
			},
		},
		{
			Name: "2025_01_01_000001_create_matches_table",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						idempotency_key UUID NOT NULL,
						team1_player1_id BIGINT NOT NULL REFERENCES players(id),
						team1_player2_id BIGINT NOT NULL REFERENCES players(id),
						team2_player1_id BIGINT NOT NULL REFERENCES players(id),
						team2_player2_id BIGINT NOT NULL REFERENCES players(id),
						team1_score INT NOT NULL CHECK (team1_score >= 0),
						team2_score INT NOT NULL CHECK (team2_score >= 0),
						date_played TIMESTAMPTZ NOT NULL,
						period INT NOT NULL,
						result VARCHAR(10) NOT NULL CHECK (result IN ('team1_win', 'team2_win')),
						elo_change INT NOT NULL DEFAULT 0 CHECK (elo_change >= 0),
						state VARCHAR(20) NOT NULL DEFAULT 'committed',
						team1_player1_elo_before INT NOT NULL DEFAULT 0,
						team1_player2_elo_before INT NOT NULL DEFAULT 0,
						team2_player1_elo_before INT NOT NULL DEFAULT 0,
						team2_player2_elo_before INT NOT NULL DEFAULT 0,
						team1_player1_skill_mean_before DOUBLE PRECISION NOT NULL,
						team1_player1_skill_uncertainty_before DOUBLE PRECISION NOT NULL,
						team1_player2_skill_mean_before DOUBLE PRECISION NOT NULL,
						team1_player2_skill_uncertainty_before DOUBLE PRECISION NOT NULL,
						team2_player1_skill_mean_before DOUBLE PRECISION NOT NULL,
						team2_player1_skill_uncertainty_before DOUBLE PRECISION NOT NULL,
						team2_player2_skill_mean_before DOUBLE PRECISION NOT NULL,
						team2_player2_skill_uncertainty_before DOUBLE PRECISION NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW(),
						CHECK (team1_score <> team2_score),
						CHECK (team1_player1_id <> team1_player2_id
							AND team1_player1_id <> team2_player1_id
							AND team1_player1_id <> team2_player2_id
							AND team1_player2_id <> team2_player1_id
							AND team1_player2_id <> team2_player2_id
							AND team2_player1_id <> team2_player2_id)
					)
				`).Error; err != nil {
					return err
				}

				indexes := []string{
					`CREATE UNIQUE INDEX IF NOT EXISTS idx_matches_idempotency_key ON matches(idempotency_key)`,
					`CREATE INDEX IF NOT EXISTS idx_matches_period_date ON matches(period, date_played, id)`,
					`CREATE INDEX IF NOT EXISTS idx_matches_team1_player1_id ON matches(team1_player1_id)`,
					`CREATE INDEX IF NOT EXISTS idx_matches_team1_player2_id ON matches(team1_player2_id)`,
					`CREATE INDEX IF NOT EXISTS idx_matches_team2_player1_id ON matches(team2_player1_id)`,
					`CREATE INDEX IF NOT EXISTS idx_matches_team2_player2_id ON matches(team2_player2_id)`,
				}
				for _, stmt := range indexes {
					if err := db.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error
			},
		},
		{
			Name: "2025_01_01_000002_create_period_archive_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS period_archives (
						id BIGSERIAL PRIMARY KEY,
						period INT NOT NULL,
						archived_at TIMESTAMPTZ NOT NULL,
						total_matches INT NOT NULL DEFAULT 0,
						total_players INT NOT NULL DEFAULT 0,
						statistics JSONB
					)
				`).Error; err != nil {
					return err
				}
				if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_period_archives_period ON period_archives(period)`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS archived_player_snapshots (
						id BIGSERIAL PRIMARY KEY,
						archive_id BIGINT NOT NULL REFERENCES period_archives(id) ON DELETE CASCADE,
						player_id BIGINT NOT NULL,
						player_name VARCHAR(100) NOT NULL,
						player_email VARCHAR(255) NOT NULL,
						elo_rating INT NOT NULL,
						skill_mean DOUBLE PRECISION NOT NULL,
						skill_uncertainty DOUBLE PRECISION NOT NULL,
						matches_played INT NOT NULL,
						matches_won INT NOT NULL,
						matches_lost INT NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW()
					)
				`).Error; err != nil {
					return err
				}
				return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_archive_player ON archived_player_snapshots(archive_id, player_id)`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS archived_player_snapshots CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS period_archives CASCADE").Error
			},
		},
	}
}

// GetAllMigrations returns every migration in application order.
func GetAllMigrations() []MigrationDefinition {
	return GetCoreMigrations()
}
