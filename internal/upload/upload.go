// Package upload stores admin-submitted images under the static file root
// and hands back their public URL.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the stored images are served under.
const PublicPrefix = "/news-images/"

// Saver writes uploaded images into Dir.
type Saver struct {
	Dir string
}

// NewSaver builds a Saver rooted at dir.
func NewSaver(dir string) *Saver {
	return &Saver{Dir: dir}
}

// SaveImage stores an uploaded file and returns its public URL. A nil or
// empty file is a no-op returning "".
func (s *Saver) SaveImage(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return PublicPrefix + name, nil
}
