package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports changes to a single config file. Editors often replace
// files instead of writing them, so it watches the parent directory and
// filters by name.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < debounce {
				continue
			}
			last = now
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
