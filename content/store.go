package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/model"
)

// Store holds the profile currently served. It is swapped as a whole on reload.
type Store struct {
	mu      sync.RWMutex
	profile *model.Profile
	path    string
}

// NewStore loads the profile from path, or uses the defaults when path is empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	if path == "" {
		s.profile = Default()

		return s, nil
	}

	profile, err := Load(path)
	if err != nil {
		return nil, err
	}

	s.profile = profile

	return s, nil
}

// NewStaticStore wraps an already built profile.
func NewStaticStore(p *model.Profile) *Store {
	return &Store{profile: p}
}

func (s *Store) Profile() *model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// Reload re-reads the content file. On error the previous profile stays.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	profile, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	return nil
}

// Watch reloads the store whenever the content file is written, until ctx is done.
// The parent directory is watched because editors often replace the file.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()

		return fmt.Errorf("could not watch %s: %w", s.path, err)
	}

	logCtx := logging.PackageCtx("content")
	target := filepath.Clean(s.path)

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != target {
					continue
				}

				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if err := s.Reload(); err != nil {
					slog.ErrorContext(logCtx, "Content reload failed", "path", s.path, "error", err)

					continue
				}

				slog.InfoContext(logCtx, "Content reloaded", "path", s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				slog.ErrorContext(logCtx, "Watcher error", "error", err)
			}
		}
	}()

	return nil
}
