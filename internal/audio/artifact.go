package audio

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Artifact is a playable WAV written to a temp file. Its URL is a file://
// reference; Release removes the file and may be called more than once.
type Artifact struct {
	ID   string
	Path string
	Size int

	once sync.Once
	err  error
}

// NewFileArtifact writes wav into dir (the system temp dir when empty).
func NewFileArtifact(dir string, wav []byte) (*Artifact, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}

	id := uuid.NewString()
	path := filepath.Join(dir, "fico-"+id+".wav")
	if err := os.WriteFile(path, wav, 0600); err != nil {
		return nil, fmt.Errorf("write audio file: %w", err)
	}

	return &Artifact{ID: id, Path: path, Size: len(wav)}, nil
}

func (a *Artifact) URL() string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(a.Path)}).String()
}

// Release deletes the backing file.
func (a *Artifact) Release() error {
	if a == nil {
		return nil
	}
	a.once.Do(func() {
		if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			a.err = err
		}
	})
	return a.err
}
