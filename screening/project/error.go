package project

import "github.com/introlligent/screener/pkg/errx"

var ErrRegistry = errx.NewRegistry("PROJECT")

var (
	CodeNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, 404, "project not found")
	CodeResumeNotFound  = ErrRegistry.Register("RESUME_NOT_FOUND", errx.TypeNotFound, 404, "resume not found in project")
	CodeVersionConflict = ErrRegistry.Register("VERSION_CONFLICT", errx.TypeConflict, 409, "project was modified concurrently")
	CodeSaveFailed      = ErrRegistry.Register("SAVE_FAILED", errx.TypeInternal, 500, "failed to save project")
	CodeInvalidInput    = ErrRegistry.Register("INVALID_INPUT", errx.TypeValidation, 400, "invalid project input")
)

func ErrNotFound(id string) *errx.Error {
	return ErrRegistry.New(CodeNotFound).WithDetail("project_id", id)
}

func ErrResumeNotFound(projectID, resumeID string) *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound).
		WithDetail("project_id", projectID).
		WithDetail("resume_id", resumeID)
}

func ErrVersionConflict(id string) *errx.Error {
	return ErrRegistry.New(CodeVersionConflict).WithDetail("project_id", id)
}

func ErrSaveFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeSaveFailed, cause)
}

func ErrInvalidInput(msg string) *errx.Error {
	return ErrRegistry.New(CodeInvalidInput).WithDetail("reason", msg)
}
