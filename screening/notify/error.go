package notify

import "github.com/introlligent/screener/pkg/errx"

var ErrRegistry = errx.NewRegistry("NOTIFY")

var (
	CodeInvalidKind = ErrRegistry.Register("INVALID_KIND", errx.TypeValidation, 400, "Invalid email type")
	CodeSendFailed  = ErrRegistry.Register("SEND_FAILED", errx.TypeExternal, 502, "Failed to send email")
)

func ErrInvalidKind(kind string) *errx.Error {
	return ErrRegistry.New(CodeInvalidKind).WithDetail("type", kind)
}

func ErrSendFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeSendFailed, cause)
}
