package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nmelo/vellum/internal/logger"
)

// Watch reloads the config file whenever it changes and delivers the fresh
// Config to onChange. The parent directory is watched rather than the file
// itself so editors that replace-on-save keep the watch alive. The returned
// stop function releases the watcher.
func Watch(path string, onChange func(*Config)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})

	go func() {
		defer watcher.Close()

		var debounce *time.Timer

		for {
			select {
			case <-done:
				if debounce != nil {
					debounce.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				// Coalesce the burst of events a single save produces.
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(watchDebounce, func() {
					cfg, err := Load(path)
					if err != nil {
						logger.Errorf("Config reload failed: %v", err)
						return
					}
					logger.InfoTagf("config", "Config reloaded from %s", path)
					onChange(cfg)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warnf("Config watcher error: %v", err)
			}
		}
	}()

	return func() { close(done) }, nil
}
