// Package uploads persists admin-submitted images under the uploads directory
// and hands back their public paths.
package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// MaxFilesPerRequest caps one upload call.
const MaxFilesPerRequest = 10

// Store writes uploaded files to dir with generated collision-free names and
// serves them back under publicPrefix.
type Store struct {
	dir          string
	publicPrefix string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, publicPrefix: "/uploads"}
}

// Dir returns the backing directory, for static mounting.
func (s *Store) Dir() string {
	return s.dir
}

// SaveAll stores every file and returns public paths in receipt order. On any
// failure it removes the files it already wrote and returns the error, so a
// failed batch leaves nothing behind.
func (s *Store) SaveAll(field string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files supplied")
	}
	if len(files) > MaxFilesPerRequest {
		return nil, fmt.Errorf("too many files: %d exceeds limit of %d", len(files), MaxFilesPerRequest)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", s.dir, err)
	}

	var written []string
	urls := make([]string, 0, len(files))

	for _, fh := range files {
		name := s.generateName(field, fh.Filename)
		dst := filepath.Join(s.dir, name)

		if err := saveFile(fh, dst); err != nil {
			for _, p := range written {
				_ = os.Remove(p)
			}
			return nil, fmt.Errorf("store uploaded file %s: %w", fh.Filename, err)
		}

		written = append(written, dst)
		urls = append(urls, s.publicPrefix+"/"+name)
	}

	return urls, nil
}

// generateName combines the field tag, a timestamp and a random suffix, keeping
// the original extension. Collisions are avoided without any coordination.
func (s *Store) generateName(field, original string) string {
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), randomSuffix(), filepath.Ext(original))
}

func randomSuffix() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func saveFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}

	return out.Close()
}
