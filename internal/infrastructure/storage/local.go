// Package storage keeps uploaded presentation files on local disk. Only the
// stored path string ends up on a registration row; downloads go through
// short-lived tokens so the admin UI can hand out links without credentials.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"regportal/internal/ports/output"
)

var _ output.FileStore = (*LocalStore)(nil)

// LocalStore implements output.FileStore on a local directory.
type LocalStore struct {
	dir     string
	linkTTL time.Duration
	tokens  *gocache.Cache
}

// NewLocalStore creates dir if needed. linkTTL bounds how long a download
// link stays valid.
func NewLocalStore(dir string, linkTTL time.Duration) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		linkTTL: linkTTL,
		tokens:  gocache.New(linkTTL, 2*linkTTL),
	}, nil
}

// Store writes the file under a uuid-prefixed key so uploads never collide.
func (s *LocalStore) Store(ctx context.Context, name string, r io.Reader) (string, error) {
	key := uuid.NewString() + "-" + sanitize(name)
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return key, nil
}

// DownloadLink mints a time-limited token resolving back to path.
func (s *LocalStore) DownloadLink(path string) (string, error) {
	if _, err := os.Stat(filepath.Join(s.dir, filepath.Base(path))); err != nil {
		return "", fmt.Errorf("stat upload: %w", err)
	}
	token := uuid.NewString()
	s.tokens.Set(token, path, s.linkTTL)
	return "/api/uploads/" + token, nil
}

// Resolve maps a token back to its stored path; ok is false once expired.
func (s *LocalStore) Resolve(token string) (string, bool) {
	v, ok := s.tokens.Get(token)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (s *LocalStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return f, nil
}

// sanitize strips path separators and whitespace from client filenames.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
