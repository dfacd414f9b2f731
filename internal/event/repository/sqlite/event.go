package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"eventsnap/internal/event/repository"
	"eventsnap/internal/model"
	pkgLog "eventsnap/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	date        TEXT NOT NULL,
	time        TEXT NOT NULL,
	end_time    TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_created_at ON events (created_at DESC);
`

// implRepository stores extraction history in SQLite.
type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.EventRepository = (*implRepository)(nil)

// New opens (or creates) the database at path and initializes the schema.
func New(l pkgLog.Logger, path string) (repository.EventRepository, *sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init schema: %w", err)
	}

	return &implRepository{l: l, db: db}, db, nil
}

func (r *implRepository) Save(ctx context.Context, ev model.ExtractedEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, title, date, time, end_time, location, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID.String(),
		ev.Event.Title,
		ev.Event.Date,
		ev.Event.Time,
		ev.Event.EndTime,
		ev.Event.Location,
		ev.Event.Description,
		ev.CreatedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.Save: %v", err)
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.ExtractedEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, date, time, end_time, location, description, created_at
		 FROM events
		 ORDER BY created_at DESC
		 LIMIT ? OFFSET ?`,
		opt.Limit, opt.Offset,
	)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.List: %v", err)
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.ExtractedEvent
	for rows.Next() {
		var (
			id        string
			ev        model.EventRecord
			createdAt time.Time
		)
		if err := rows.Scan(&id, &ev.Title, &ev.Date, &ev.Time, &ev.EndTime, &ev.Location, &ev.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse event id %q: %w", id, err)
		}

		events = append(events, model.ExtractedEvent{
			ID:        parsed,
			Event:     ev,
			CreatedAt: createdAt,
		})
	}

	return events, rows.Err()
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.Count: %v", err)
		return 0, fmt.Errorf("count events: %w", err)
	}

	return total, nil
}
