// Package store keeps the dashboard data set in a SQLite database that only
// lives as long as the process.
package store

import (
	"context"
	"fmt"

	"flowsync/internal/insight"
	"flowsync/internal/meeting"
	"flowsync/internal/seed"
	"flowsync/internal/task"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// memoryDSN gives each process a private database that disappears on exit.
const memoryDSN = ":memory:"

type Repository struct {
	db *sqlx.DB
}

// Open creates an empty session database with the dashboard schema.
func Open(ctx context.Context) (*Repository, error) {
	db, err := sqlx.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	// Every new connection to :memory: is a different database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging session db: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.init(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	priority TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	ai_suggested INTEGER NOT NULL DEFAULT 0,
	estimated_minutes INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS meetings (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	start_time TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	participants INTEGER NOT NULL,
	ai_optimized INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS productivity (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	focus INTEGER NOT NULL,
	meetings INTEGER NOT NULL,
	tasks INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS insights (
	position INTEGER PRIMARY KEY,
	body TEXT NOT NULL
);
`

// Seed loads a data set, keeping slice order as display order.
func (r *Repository) Seed(ctx context.Context, data seed.Data) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, t := range data.Tasks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (id, position, title, priority, completed, ai_suggested, estimated_minutes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Title, string(t.Priority),
			boolToInt(t.Completed), boolToInt(t.AISuggested), t.EstimatedMinutes,
		)
		if err != nil {
			return fmt.Errorf("seeding task %s: %w", t.ID, err)
		}
	}

	for i, m := range data.Meetings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO meetings (id, position, title, start_time, duration_minutes, participants, ai_optimized)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.ID, i, m.Title, m.Time, m.DurationMinutes, m.Participants, boolToInt(m.AIOptimized),
		)
		if err != nil {
			return fmt.Errorf("seeding meeting %s: %w", m.ID, err)
		}
	}

	for i, p := range data.Productivity {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO productivity (position, name, focus, meetings, tasks) VALUES (?, ?, ?, ?, ?)",
			i, p.Name, p.Focus, p.Meetings, p.Tasks,
		)
		if err != nil {
			return fmt.Errorf("seeding productivity %s: %w", p.Name, err)
		}
	}

	for i, body := range data.Insights {
		if _, err := tx.ExecContext(ctx, "INSERT INTO insights (position, body) VALUES (?, ?)", i, body); err != nil {
			return fmt.Errorf("seeding insight %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *Repository) Tasks(ctx context.Context) (task.List, error) {
	var tasks task.List
	err := r.db.SelectContext(ctx, &tasks,
		`SELECT id, title, priority, completed, ai_suggested, estimated_minutes
		 FROM tasks ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// SetTaskCompleted stores a task's completion flag. An unknown id is not
// an error; nothing is written.
func (r *Repository) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = ? WHERE id = ?",
		boolToInt(completed), id,
	)
	if err != nil {
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	return nil
}

func (r *Repository) Meetings(ctx context.Context) ([]meeting.Meeting, error) {
	var meetings []meeting.Meeting
	err := r.db.SelectContext(ctx, &meetings,
		`SELECT id, title, start_time, duration_minutes, participants, ai_optimized
		 FROM meetings ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying meetings: %w", err)
	}
	return meetings, nil
}

func (r *Repository) Productivity(ctx context.Context) (insight.Series, error) {
	var series insight.Series
	err := r.db.SelectContext(ctx, &series,
		"SELECT name, focus, meetings, tasks FROM productivity ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying productivity: %w", err)
	}
	return series, nil
}

func (r *Repository) Insights(ctx context.Context) ([]string, error) {
	var insights []string
	if err := r.db.SelectContext(ctx, &insights, "SELECT body FROM insights ORDER BY position"); err != nil {
		return nil, fmt.Errorf("querying insights: %w", err)
	}
	return insights, nil
}

// Load reads the whole data set back.
func (r *Repository) Load(ctx context.Context) (seed.Data, error) {
	var (
		data seed.Data
		err  error
	)
	if data.Tasks, err = r.Tasks(ctx); err != nil {
		return seed.Data{}, err
	}
	if data.Meetings, err = r.Meetings(ctx); err != nil {
		return seed.Data{}, err
	}
	if data.Productivity, err = r.Productivity(ctx); err != nil {
		return seed.Data{}, err
	}
	if data.Insights, err = r.Insights(ctx); err != nil {
		return seed.Data{}, err
	}
	return data, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
