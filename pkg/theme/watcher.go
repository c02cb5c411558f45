package theme

import (
	"github.com/fsnotify/fsnotify"
)

// WatchFile watches the theme file and calls onChange whenever it is written
// or re-created (editors and theme generators often replace the file). The
// callback runs on the watcher goroutine; callers hand the signal to their
// event loop. The returned stop function releases the watcher.
func WatchFile(path string, onChange func()) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					DebugLog("theme file changed: %s", event.Name)
					onChange()
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				DebugLog("theme file watcher error: %v", watchErr)
			}
		}
	}()

	DebugLog("watching theme file: %s", path)
	return watcher.Close, nil
}
