package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when its file changes on disk. It
// watches the file's directory rather than the file itself, so editors
// that replace the file on save (write to temp, rename over) are still
// observed.
type Watcher struct {
	mu sync.Mutex

	path    string
	watcher *fsnotify.Watcher

	configs chan Config
	errs    chan error

	closed  bool
	closeCh chan struct{}
	done    sync.WaitGroup
}

// NewWatcher starts watching the config file at path.
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		watcher: fsw,
		configs: make(chan Config, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.done.Add(1)
	go w.loop()

	return w, nil
}

// Configs returns the channel of successfully reloaded configurations.
func (w *Watcher) Configs() <-chan Config { return w.configs }

// Errors returns the channel of reload failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.done.Wait()
	return err
}

// loop processes filesystem events until Close.
func (w *Watcher) loop() {
	defer w.done.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.deliver(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

// relevant reports whether ev concerns the config file's content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Name != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// deliver sends a config without blocking; a pending unread config is
// replaced by the newer one.
func (w *Watcher) deliver(cfg Config) {
	for {
		select {
		case w.configs <- cfg:
			return
		default:
			select {
			case <-w.configs:
			default:
			}
		}
	}
}

// report sends an error without blocking; older unread errors are dropped.
func (w *Watcher) report(err error) {
	for {
		select {
		case w.errs <- err:
			return
		default:
			select {
			case <-w.errs:
			default:
			}
		}
	}
}
