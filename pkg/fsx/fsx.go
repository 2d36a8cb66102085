package fsx

import "context"

// FileReader reads a stored file by path.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter stores a file under a path with a content type.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
}

// FileRemover deletes stored files. Implementations treat missing paths
// as success.
type FileRemover interface {
	RemoveFiles(ctx context.Context, paths []string) error
}

// FileSystem is the full storage contract used by the application.
type FileSystem interface {
	FileReader
	FileWriter
	FileRemover
}
