package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/sahaara/core/internal/infrastructure/logger"
	"github.com/sahaara/core/internal/ports"
)

const documentSuffix = ".json"

// FileStore keeps one JSON document per key in a directory. Writes replace
// the whole document via rename, which gives last-write-wins semantics with
// no partial reads. There is no cross-process locking: the last writer wins,
// matching the single-logical-writer storage model.
type FileStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileStore creates the directory if needed and returns the store.
func NewFileStore(dir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, logger: log.WithComponent("filestore")}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+documentSuffix)
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read document %s: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write document %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write document %s: %w", key, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write document %s: %w", key, err)
	}

	s.logger.Debugw("Document written", "key", key, "bytes", len(value))
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// Watch emits document keys when files in the store directory change. This
// includes the process's own writes; callers that care only about external
// writers have to track their own modifications.
func (s *FileStore) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch store: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch store: %w", err)
	}

	changes := make(chan string)
	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) {
					continue
				}
				name := filepath.Base(event.Name)
				if !strings.HasSuffix(name, documentSuffix) {
					continue
				}
				key := strings.TrimSuffix(name, documentSuffix)
				select {
				case changes <- key:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warnw("Store watch error", "error", err)
			}
		}
	}()

	return changes, nil
}

var (
	_ ports.KeyValueStore = (*FileStore)(nil)
	_ ports.StoreWatcher  = (*FileStore)(nil)
)
