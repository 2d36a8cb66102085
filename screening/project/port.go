package project

import (
	"context"

	"github.com/introlligent/screener/pkg/kernel"
)

// Repository persists projects keyed by ID. Save enforces optimistic
// concurrency: it succeeds only when the stored version matches the
// version the project was loaded with, and returns a version-conflict
// error otherwise.
type Repository interface {
	Get(ctx context.Context, id kernel.ProjectID) (*Project, error)
	List(ctx context.Context, owner string) ([]*Project, error)
	Create(ctx context.Context, p *Project) error
	Save(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id kernel.ProjectID) error
}
