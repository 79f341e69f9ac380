package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

const applicationColumns = `id, name, phone, id_number, region, education, major, experience, note, status, created_at, updated_at`

// CreateApplication inserts a new application and returns it with its
// allocated id. Ids come from a Postgres sequence, so they are unique and
// strictly increasing across concurrent callers.
func (r *ApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	app.Normalize()
	app.CreatedAt = r.now()

	query := `
		INSERT INTO applications (name, phone, id_number, region, education, major, experience, note, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		app.Name,
		app.Phone,
		app.IDNumber,
		app.Region,
		app.Education,
		app.Major,
		app.Experience,
		app.Note,
		app.Status,
		app.CreatedAt,
	).Scan(&app.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// ListApplications returns applications matching the filter, newest first.
// The free-text query matches name and id_number case-insensitively and the
// phone case-sensitively, all as substrings.
func (r *ApplicationRepo) ListApplications(ctx context.Context, filter models.ApplicationFilter) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications`

	var conds []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR phone LIKE $%d OR id_number ILIKE $%d)", n, n, n))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	apps := []*models.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// GetApplicationByID retrieves an application by id, nil when absent
func (r *ApplicationRepo) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

// FindApplicationByPhoneAndIDNumber retrieves an application by the exact
// phone and identity-number pair. The identity number is compared against
// its uppercase-normalized stored form; the earliest matching record wins.
func (r *ApplicationRepo) FindApplicationByPhoneAndIDNumber(ctx context.Context, phone, idNumber string) (*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE phone = $1 AND id_number = $2
		ORDER BY id ASC
		LIMIT 1
	`

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, phone, strings.ToUpper(idNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return &app, nil
}

// UpdateApplicationStatus sets the status and stamps updated_at. A missing
// id yields nil without an error. Any status-to-status transition is
// accepted; the pipeline deliberately has no transition guard.
func (r *ApplicationRepo) UpdateApplicationStatus(ctx context.Context, id int64, status models.Status) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + applicationColumns

	var app models.Application
	err := r.db.GetContext(ctx, &app, query, status, r.now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &app, nil
}

// GetStats returns the total application count together with per-status
// counts; statuses without applications count as zero.
func (r *ApplicationRepo) GetStats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'written') AS written,
			COUNT(*) FILTER (WHERE status = 'interview') AS interview,
			COUNT(*) FILTER (WHERE status = 'pass') AS pass,
			COUNT(*) FILTER (WHERE status = 'reject') AS reject
		FROM applications
	`

	var stats models.Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}

// escapeLike neutralizes LIKE metacharacters so user input is matched as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
