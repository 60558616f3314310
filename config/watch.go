package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"viewtrack/debounce"
	"viewtrack/log"
)

// reloadSettle is how long file events must settle before a reload runs.
// Editors and atomic-save tools emit several events per write.
const reloadSettle = 200 * time.Millisecond

// Watch invokes onReload with a freshly loaded Config whenever the config
// file changes. The watch covers the config directory, so atomic
// rename-into-place saves are seen too. The returned stop function ends the
// watch and cancels any pending reload.
func Watch(onReload func(*Config)) (stop func(), err error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	deb := debounce.New(reloadSettle)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != configPath {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				deb.Call(func() {
					log.InfoLog.Printf("config changed, reloading: %s", configPath)
					onReload(LoadConfig())
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WarningLog.Printf("config watch error: %v", err)
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
		deb.Stop()
	}, nil
}
