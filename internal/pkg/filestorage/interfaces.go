package filestorage

import "mime/multipart"

// FileInfo represents information about a stored file
type FileInfo struct {
	Path     string // Relative path where the file is stored
	URL      string // Public URL for the file
	Filename string // Original filename
	FileSize int64  // Size in bytes
	MimeType string // MIME type of the file
}

// FileStorage defines the interface for file storage operations.
// The only implementation today is local disk; the Resource model's
// storage_provider field leaves room for others.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns where it landed.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (*FileInfo, error)

	// DeleteFile removes a file from storage by its relative path.
	DeleteFile(filePath string) error

	// Provider names the storage backend, e.g. "Local".
	Provider() string
}
