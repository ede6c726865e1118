package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// FileStore keeps uploaded photo bytes on a local directory and maps stored
// names to the public path they are served from.
type FileStore struct {
	root      string
	urlPrefix string
}

// New creates the root directory if it does not exist yet.
func New(root, urlPrefix string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{root: root, urlPrefix: urlPrefix}, nil
}

// Root returns the directory stored files live in.
func (s *FileStore) Root() string {
	return s.root
}

// Save writes the photo bytes under a synthetic stored name and returns that
// name for persistence. The name embeds a fresh UUID, so two uploads never
// collide, and the client-supplied filename only survives as a slug.
func (s *FileStore) Save(ownerID uint, originalName string, r io.Reader) (string, error) {
	name := storedName(ownerID, originalName)
	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close photo file: %w", err)
	}
	return name, nil
}

// URLFor maps a stored name to the path it is served from.
func (s *FileStore) URLFor(storedName string) string {
	return path.Join(s.urlPrefix, storedName)
}

// storedName builds "<ownerID>_<uuid>_<slug><ext>". Slugging reduces the
// original base name to [a-z0-9-], which leaves no room for separators or
// dot-dot sequences; the extension goes through its own allow-list.
func storedName(ownerID uint, originalName string) string {
	base := filepath.Base(originalName)
	ext := strings.ToLower(filepath.Ext(base))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	stem := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "photo"
	}
	return fmt.Sprintf("%d_%s_%s%s", ownerID, uuid.NewString(), stem, ext)
}
