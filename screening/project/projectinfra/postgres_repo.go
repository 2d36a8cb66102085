package projectinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/screening/project"
)

// PostgresRepository stores each project as a JSONB document keyed by
// ID, with an integer version column for optimistic concurrency.
type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type projectRow struct {
	ID      string          `db:"id"`
	Owner   string          `db:"owner"`
	Data    json.RawMessage `db:"data"`
	Version int             `db:"version"`
}

func rowToProject(row projectRow) (*project.Project, error) {
	var p project.Project
	if err := json.Unmarshal(row.Data, &p); err != nil {
		return nil, project.ErrSaveFailed(err)
	}
	p.Version = row.Version
	return &p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id kernel.ProjectID) (*project.Project, error) {
	var row projectRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, owner, data, version FROM projects WHERE id = $1`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, project.ErrNotFound(id.String())
	}
	if err != nil {
		return nil, project.ErrSaveFailed(err)
	}
	return rowToProject(row)
}

func (r *PostgresRepository) List(ctx context.Context, owner string) ([]*project.Project, error) {
	query := `SELECT id, owner, data, version FROM projects ORDER BY data->>'created_at' DESC`
	args := []any{}
	if owner != "" {
		query = `SELECT id, owner, data, version FROM projects WHERE owner = $1 ORDER BY data->>'created_at' DESC`
		args = append(args, owner)
	}

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, project.ErrSaveFailed(err)
	}

	projects := make([]*project.Project, 0, len(rows))
	for _, row := range rows {
		p, err := rowToProject(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *project.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return project.ErrSaveFailed(err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (id, owner, data, version) VALUES ($1, $2, $3, 1)`,
		p.ID.String(), p.Owner, data)
	if err != nil {
		return project.ErrSaveFailed(err)
	}
	p.Version = 1
	return nil
}

// Save writes the project only if nobody else saved it since it was
// loaded. On success the in-memory version is bumped to match.
func (r *PostgresRepository) Save(ctx context.Context, p *project.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return project.ErrSaveFailed(err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET data = $1, version = version + 1 WHERE id = $2 AND version = $3`,
		data, p.ID.String(), p.Version)
	if err != nil {
		return project.ErrSaveFailed(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return project.ErrSaveFailed(err)
	}
	if affected == 0 {
		return project.ErrVersionConflict(p.ID.String())
	}
	p.Version++
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id kernel.ProjectID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id.String())
	if err != nil {
		return project.ErrSaveFailed(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return project.ErrSaveFailed(err)
	}
	if affected == 0 {
		return project.ErrNotFound(id.String())
	}
	return nil
}
