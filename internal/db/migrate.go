package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE additions tolerate re-runs by skipping duplicate-column errors.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL DEFAULT '',
		organization_id TEXT NOT NULL DEFAULT '',
		role            TEXT NOT NULL DEFAULT 'member'
		                CHECK(role IN ('admin','member')),
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('pending','approved','rejected')),
		api_token       TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_api_token ON users(api_token) WHERE api_token != ''`,

	`CREATE TABLE IF NOT EXISTS programs (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		start_date      TEXT NOT NULL,
		end_date        TEXT,
		progress        INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		organization_id TEXT NOT NULL DEFAULT '',
		user_id         TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_programs_org ON programs(organization_id)`,
	`CREATE INDEX IF NOT EXISTS idx_programs_user ON programs(user_id)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		program_id  TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'not_started'
		            CHECK(status IN ('not_started','in_progress','completed','at_risk','delayed')),
		progress    INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		owner       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_program ON goals(program_id)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id          TEXT PRIMARY KEY,
		goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'not_started'
		            CHECK(status IN ('not_started','in_progress','completed','at_risk','delayed')),
		progress    INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		owner       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_goal ON milestones(goal_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		milestone_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'not_started'
		             CHECK(status IN ('not_started','in_progress','completed','at_risk','delayed')),
		due_date     TEXT,
		assignee     TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,

	`CREATE TABLE IF NOT EXISTS milestone_dependencies (
		predecessor_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		successor_id   TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		PRIMARY KEY (predecessor_id, successor_id),
		CHECK (predecessor_id != successor_id)
	)`,

	`CREATE TABLE IF NOT EXISTS milestone_resources (
		milestone_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
		user_id      TEXT NOT NULL,
		PRIMARY KEY (milestone_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS risks (
		id           TEXT PRIMARY KEY,
		program_id   TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		milestone_id TEXT REFERENCES milestones(id) ON DELETE SET NULL,
		description  TEXT NOT NULL,
		probability  REAL NOT NULL DEFAULT 0 CHECK(probability BETWEEN 0 AND 1),
		impact       REAL NOT NULL DEFAULT 0,
		mitigation   TEXT NOT NULL DEFAULT '',
		update_log   TEXT NOT NULL DEFAULT '',
		update_date  TEXT,
		status       TEXT NOT NULL DEFAULT 'open' CHECK(status IN ('open','closed')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_risks_program ON risks(program_id)`,

	`CREATE TABLE IF NOT EXISTS scenarios (
		id                    TEXT PRIMARY KEY,
		program_id            TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		change_timeline_mo    REAL NOT NULL DEFAULT 0,
		change_budget_pct     REAL NOT NULL DEFAULT 0,
		change_resources_pct  REAL NOT NULL DEFAULT 0,
		predict_timeline_mo   REAL NOT NULL DEFAULT 0,
		predict_budget_pct    REAL NOT NULL DEFAULT 0,
		predict_resources_pct REAL NOT NULL DEFAULT 0,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scenarios_program ON scenarios(program_id)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id          TEXT PRIMARY KEY,
		program_id  TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		kind        TEXT NOT NULL CHECK(kind IN ('vendor','miscellaneous')),
		vendor      TEXT NOT NULL DEFAULT '',
		amount      REAL NOT NULL DEFAULT 0,
		issued_date TEXT NOT NULL,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_invoices_program ON invoices(program_id)`,

	`CREATE TABLE IF NOT EXISTS costs (
		id            TEXT PRIMARY KEY,
		program_id    TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		invoice_id    TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		category      TEXT NOT NULL DEFAULT '',
		amount        REAL NOT NULL DEFAULT 0,
		incurred_date TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_costs_invoice ON costs(invoice_id)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		program_id TEXT REFERENCES programs(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_program ON chat_messages(program_id)`,
}
