package profile

import (
	"net/http"

	"github.com/introlligent/screener/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PROFILE")

var (
	CodeExtractionEmpty     = ErrRegistry.Register("EXTRACTION_EMPTY", errx.TypeValidation, http.StatusUnprocessableEntity, "Document yielded no text")
	CodeGenerationFailed    = ErrRegistry.Register("GENERATION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to generate candidate profile")
	CodeParseIncomplete     = ErrRegistry.Register("PARSE_INCOMPLETE", errx.TypeInternal, http.StatusInternalServerError, "Generated text is missing expected sections")
	CodeScoreUnparsable     = ErrRegistry.Register("SCORE_UNPARSABLE", errx.TypeInternal, http.StatusInternalServerError, "ATS evaluation JSON is missing or malformed")
	CodeStorageUnavailable  = ErrRegistry.Register("STORAGE_UNAVAILABLE", errx.TypeInternal, http.StatusServiceUnavailable, "Document storage is not configured")
	CodeStorageUploadFailed = ErrRegistry.Register("STORAGE_UPLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to store document")
)

func ErrExtractionEmpty() *errx.Error {
	return ErrRegistry.New(CodeExtractionEmpty)
}

func ErrGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeGenerationFailed)
}

func ErrParseIncomplete() *errx.Error {
	return ErrRegistry.New(CodeParseIncomplete)
}

func ErrScoreUnparsable() *errx.Error {
	return ErrRegistry.New(CodeScoreUnparsable)
}

func ErrStorageUnavailable() *errx.Error {
	return ErrRegistry.New(CodeStorageUnavailable)
}

func ErrStorageUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeStorageUploadFailed)
}
