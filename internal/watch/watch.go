// Package watch keeps a Keychain entry in sync with a configuration file
// on disk, re-storing the file each time it changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benaskins/scfg/internal/secrets"
)

const debounce = 500 * time.Millisecond

// KeepStored stores filename under (account, service), then watches it and
// re-stores on every change until ctx is cancelled. Change events are
// debounced so editors that write in bursts trigger a single store.
func KeepStored(ctx context.Context, b secrets.Backend, account, service, filename string, logger *slog.Logger) error {
	if err := b.Store(account, service, filename); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: starting watcher: %v", secrets.ErrIO, err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("%w: resolving %s: %v", secrets.ErrIO, filename, err)
	}

	// Watch the parent directory: editors that save via rename replace the
	// file and would silently detach a direct watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("%w: watching %s: %v", secrets.ErrIO, filepath.Dir(target), err)
	}

	logger.Info("watching configuration file", "file", filename, "account", account, "service", service)

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("configuration file changed", "file", filename, "op", event.Op)

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				if err := b.Store(account, service, filename); err != nil {
					logger.Error("re-store failed", "file", filename, "error", err)
					return
				}
				logger.Info("configuration re-stored", "account", account, "service", service)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
