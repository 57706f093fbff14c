// Package storage provides file storage behind a small Disk interface, with
// a local-filesystem driver and an S3-compatible driver. Uploaded profile and
// product images go through the default disk.
package storage

import "io"

// Disk is the operation set the application needs from a storage backend.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error
	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error
	// Get returns the file content at path.
	Get(path string) ([]byte, error)
	// Exists reports whether path exists.
	Exists(path string) bool
	// Delete removes path. Deleting a missing path is not an error.
	Delete(path string) error
	// URL returns the public URL for path.
	URL(path string) string
}
