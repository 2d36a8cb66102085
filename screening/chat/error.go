package chat

import "github.com/introlligent/screener/pkg/errx"

var ErrRegistry = errx.NewRegistry("CHAT")

var (
	CodeEmptyMessage = ErrRegistry.Register("EMPTY_MESSAGE", errx.TypeValidation, 400, "Please provide a message.")
	CodeStoreFailed  = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, 500, "Failed to access conversation history")
)

func ErrEmptyMessage() *errx.Error {
	return ErrRegistry.New(CodeEmptyMessage)
}

func ErrStoreFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailed, cause)
}
