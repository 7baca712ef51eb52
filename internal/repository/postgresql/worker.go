package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

const workerColumns = `id, worker_name, worker_key, country_code, timezone, required_schedule,
	exclude_holidays, is_active, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID, &w.Name, &w.Key, &w.CountryCode, &w.Timezone, &w.Schedule,
		&w.ExcludeHolidays, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// ListActive implements worker.WorkerRepository.
func (r *workerRepository) ListActive(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE is_active = TRUE ORDER BY worker_name, worker_key`

	rows, err := q.Query(ctx, query)
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
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE worker_key = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, database.Wrap("get worker", err)
	}
	return w, nil
}

// GetOrCreate implements worker.WorkerRepository.
func (r *workerRepository) GetOrCreate(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	insert := `
		INSERT INTO workers (
			id, worker_name, worker_key, country_code, timezone, required_schedule,
			exclude_holidays, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (worker_key) DO NOTHING
	`

	_, err := q.Exec(ctx, insert,
		w.ID, w.Name, w.Key, w.CountryCode, w.Timezone, string(w.Schedule),
		w.ExcludeHolidays, w.IsActive,
	)
	if err != nil {
		return worker.Worker{}, database.Wrap("create worker", err)
	}

	return r.GetByKey(ctx, w.Key)
}

// UpdatePolicy implements worker.WorkerRepository.
func (r *workerRepository) UpdatePolicy(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET country_code = $2, timezone = $3, required_schedule = $4,
			exclude_holidays = $5, is_active = $6, updated_at = now()
		WHERE worker_key = $1
		RETURNING ` + workerColumns

	updated, err := scanWorker(q.QueryRow(ctx, query,
		w.Key, w.CountryCode, w.Timezone, string(w.Schedule), w.ExcludeHolidays, w.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, database.Wrap("update worker policy", err)
	}
	return updated, nil
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}
