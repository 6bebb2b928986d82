package output

import (
	"context"
	"io"
)

// FileStore holds uploaded presentation files. Only the returned path string
// is persisted on a registration; resolution back to bytes goes through a
// short-lived download token.
type FileStore interface {
	// Store writes the file under a collision-free key derived from name
	// and returns the stored path.
	Store(ctx context.Context, name string, r io.Reader) (string, error)

	// DownloadLink returns a time-limited URL for path.
	DownloadLink(path string) (string, error)

	// Resolve maps a download token back to a stored path.
	// ok is false when the token is unknown or expired.
	Resolve(token string) (path string, ok bool)

	// Open reads back a stored file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
