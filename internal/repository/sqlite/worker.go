package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type workerRepository struct {
	*Store
}

func NewWorkerRepository(s *Store) worker.WorkerRepository {
	return &workerRepository{Store: s}
}

const workerColumns = `id, worker_name, worker_key, country_code, timezone, required_schedule,
	exclude_holidays, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorker(row rowScanner) (worker.Worker, error) {
	var (
		w                    worker.Worker
		schedule             string
		createdAt, updatedAt string
		err                  error
	)
	if err = row.Scan(
		&w.ID, &w.Name, &w.Key, &w.CountryCode, &w.Timezone, &schedule,
		&w.ExcludeHolidays, &w.IsActive, &createdAt, &updatedAt,
	); err != nil {
		return worker.Worker{}, err
	}
	w.Schedule = worker.Schedule(schedule)
	if w.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return worker.Worker{}, err
	}
	if w.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return worker.Worker{}, err
	}
	return w, nil
}

// ListActive implements worker.WorkerRepository.
func (r *workerRepository) ListActive(ctx context.Context) ([]worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE is_active = 1 ORDER BY worker_name, worker_key`)
	if err != nil {
		return nil, database.Wrap("list active workers", err)
	}
	defer rows.Close()

	var out []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, database.Wrap("scan worker", err)
		}
		out = append(out, w)
	}
	return out, database.Wrap("list active workers", rows.Err())
}

// GetByKey implements worker.WorkerRepository.
func (r *workerRepository) GetByKey(ctx context.Context, key string) (worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByKey(ctx, key)
}

func (r *workerRepository) getByKey(ctx context.Context, key string) (worker.Worker, error) {
	w, err := scanWorker(r.db.QueryRowContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE worker_key = ?`, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, database.Wrap("get worker", err)
	}
	return w, nil
}

// GetOrCreate implements worker.WorkerRepository.
func (r *workerRepository) GetOrCreate(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	now := formatTimestamp(time.Now())

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workers (
			id, worker_name, worker_key, country_code, timezone, required_schedule,
			exclude_holidays, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (worker_key) DO NOTHING`,
		w.ID, w.Name, w.Key, w.CountryCode, w.Timezone, string(w.Schedule),
		w.ExcludeHolidays, w.IsActive, now, now,
	)
	if err != nil {
		return worker.Worker{}, database.Wrap("create worker", err)
	}

	return r.getByKey(ctx, w.Key)
}

// UpdatePolicy implements worker.WorkerRepository.
func (r *workerRepository) UpdatePolicy(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
		UPDATE workers
		SET country_code = ?, timezone = ?, required_schedule = ?,
			exclude_holidays = ?, is_active = ?, updated_at = ?
		WHERE worker_key = ?`,
		w.CountryCode, w.Timezone, string(w.Schedule), w.ExcludeHolidays, w.IsActive,
		formatTimestamp(time.Now()), w.Key,
	)
	if err != nil {
		return worker.Worker{}, database.Wrap("update worker policy", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return worker.Worker{}, database.Wrap("update worker policy", err)
	} else if n == 0 {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	return r.getByKey(ctx, w.Key)
}
