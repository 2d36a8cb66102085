package projectsrv

import (
	"context"

	"github.com/introlligent/screener/pkg/errx"
	"github.com/introlligent/screener/pkg/fsx"
	"github.com/introlligent/screener/pkg/kernel"
	"github.com/introlligent/screener/pkg/logx"
	"github.com/introlligent/screener/screening/project"
)

// maxSaveRetries bounds how many times a mutation is replayed after a
// concurrent save.
const maxSaveRetries = 3

// Service owns project lifecycle and record mutations. Every mutation
// loads the latest project, applies the change, and saves with
// optimistic concurrency, retrying on version conflicts.
type Service struct {
	repo    project.Repository
	storage fsx.FileRemover
}

func New(repo project.Repository, storage fsx.FileRemover) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) CreateProject(ctx context.Context, title, description, owner string) (*project.Project, error) {
	p := project.New(kernel.NewProjectID(), title, description, owner)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetProject(ctx context.Context, id kernel.ProjectID) (*project.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context, owner string) ([]*project.Project, error) {
	return s.repo.List(ctx, owner)
}

func (s *Service) DeleteProject(ctx context.Context, id kernel.ProjectID) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Stored PDFs are cleaned up best-effort after the document is gone.
	if s.storage != nil {
		var paths []string
		for _, r := range p.Resumes {
			if r.StoragePath != "" {
				paths = append(paths, r.StoragePath)
			}
		}
		if len(paths) > 0 {
			if err := s.storage.RemoveFiles(ctx, paths); err != nil {
				logx.Warnf("project %s: failed to remove %d stored files: %v", id, len(paths), err)
			}
		}
	}
	return nil
}

// IngestRecords appends screened records to a project and returns the
// saved project.
func (s *Service) IngestRecords(ctx context.Context, id kernel.ProjectID, records []project.CandidateRecord) (*project.Project, error) {
	return s.mutate(ctx, id, func(p *project.Project) error {
		for _, rec := range records {
			p.AddResume(rec)
		}
		return nil
	})
}

// DeleteResume removes one record and deletes its stored PDF
// best-effort.
func (s *Service) DeleteResume(ctx context.Context, id kernel.ProjectID, resumeID kernel.ResumeID) (*project.Project, error) {
	var storagePath string
	p, err := s.mutate(ctx, id, func(p *project.Project) error {
		path, found := p.RemoveResume(resumeID)
		if !found {
			return project.ErrResumeNotFound(id.String(), resumeID.String())
		}
		storagePath = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	if storagePath != "" && s.storage != nil {
		if err := s.storage.RemoveFiles(ctx, []string{storagePath}); err != nil {
			logx.Warnf("project %s: failed to remove stored file %s: %v", id, storagePath, err)
		}
	}
	return p, nil
}

// mutate is the load-apply-save loop. On a version conflict the
// project is reloaded and the mutation replayed against fresh state.
func (s *Service) mutate(ctx context.Context, id kernel.ProjectID, apply func(*project.Project) error) (*project.Project, error) {
	var lastErr error
	for attempt := 0; attempt < maxSaveRetries; attempt++ {
		p, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := apply(p); err != nil {
			return nil, err
		}

		err = s.repo.Save(ctx, p)
		if err == nil {
			return p, nil
		}
		if !errx.IsCode(err, project.CodeVersionConflict) {
			return nil, err
		}
		lastErr = err
		logx.Debugf("project %s: version conflict, retrying (attempt %d)", id, attempt+1)
	}
	return nil, lastErr
}
