package fetch

import (
	"github.com/peterbourgon/diskv"
	"github.com/pkg/errors"
	"io"
	"path/filepath"
)

// Store keeps downloaded documents as flat files named by key in a directory, so 12345.xml is stored at
// <dir>/12345.xml where the annotation tools expect to find it.
type Store struct {
	dir string
	*diskv.Diskv
}

// NewStore creates a store in dir.
func NewStore(dir string) Store {
	return Store{
		dir: dir,
		Diskv: diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 0,
		}),
	}
}

// Path is where key is stored.
func (s Store) Path(key string) string {
	return filepath.Join(s.dir, key)
}

// Put streams r into key. A partially written document is removed.
func (s Store) Put(key string, r io.Reader) error {
	if err := s.WriteStream(key, r, true); err != nil {
		if s.Has(key) {
			s.Erase(key)
		}
		return errors.Wrapf(err, "could not store %s", key)
	}
	return nil
}
