package intake

import "github.com/introlligent/screener/pkg/errx"

var ErrRegistry = errx.NewRegistry("INTAKE")

var (
	CodeNotAuthenticated = ErrRegistry.Register("NOT_AUTHENTICATED", errx.TypeAuthentication, 401, "mailbox not authenticated")
	CodeFetchFailed      = ErrRegistry.Register("FETCH_FAILED", errx.TypeExternal, 502, "failed to fetch messages")
	CodeTokenStorage     = ErrRegistry.Register("TOKEN_STORAGE", errx.TypeInternal, 500, "failed to access stored credentials")
)

func ErrNotAuthenticated() *errx.Error {
	return ErrRegistry.New(CodeNotAuthenticated)
}

func ErrFetchFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeFetchFailed, cause)
}

func ErrTokenStorage(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeTokenStorage, cause)
}
