// AngelaMos | 2026
// store.go

package upload

import (
	"fmt"
	"os"
	"path/filepath"
)

// PublicPrefix is where stored files are served back from.
const PublicPrefix = "/uploads/"

type Store interface {
	Save(name string, data []byte) error
	Dir() string
}

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: abs}, nil
}

func (d *DiskStore) Dir() string {
	return d.dir
}

func (d *DiskStore) Save(name string, data []byte) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("save upload: invalid name %q", name)
	}
	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	return nil
}
