package skins

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"tavern/log"
)

// Watcher calls onChange whenever a skin file in dir is created, written,
// removed or renamed.
type Watcher struct {
	dir      string
	onChange func()
	watcher  *fsnotify.Watcher
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		dir:      dir,
		onChange: onChange,
		watcher:  w,
		done:     make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isSkinFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				log.Debug("skin changed: " + event.Name)
				if w.onChange != nil {
					w.onChange()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("skin watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}

func isSkinFile(path string) bool {
	ext := extension(filepath.Base(path))
	return ext == extCSS || ext == extManifest
}
