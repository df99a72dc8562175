package repository

import (
	model "ad-ledger/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SaveSnapshot writes every ad to path as a JSON array. The file is replaced atomically.
func (r *MemoryRepo) SaveSnapshot(path string) error {
	r.mu.RLock()
	ads := r.sortedLocked()
	r.mu.RUnlock()

	data, err := json.Marshal(ads)
	if err != nil {
		return fmt.Errorf("snapshot: encode ads: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: rename to %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot replaces the repository contents with the ads stored at path.
// A missing file leaves the repository empty and is not an error.
func (r *MemoryRepo) LoadSnapshot(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	var ads []model.Ad
	if err := json.Unmarshal(data, &ads); err != nil {
		return 0, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}

	loaded := make(map[string]model.Ad, len(ads))
	for _, ad := range ads {
		if ad.ID == "" {
			return 0, fmt.Errorf("snapshot: %s contains an ad without ID", path)
		}
		loaded[ad.ID] = ad.Clone()
	}

	r.mu.Lock()
	r.ads = loaded
	r.mu.Unlock()

	return len(loaded), nil
}
