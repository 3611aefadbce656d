package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of filesystem events editors emit
// on save into one reload.
const reloadDebounce = 250 * time.Millisecond

// Watcher reloads the configuration file when it changes on disk. A
// file that fails to parse or validate keeps the previous configuration
// and reports through the error callback.
type Watcher struct {
	path     string
	onReload func(Config)
	onError  func(error)

	fw        *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher watches path and invokes onReload with each successfully
// re-parsed Config. Both callbacks run on the watcher goroutine; onError
// may be nil.
func NewWatcher(path string, onReload func(Config), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating file watcher: %w", err)
	}

	// Watch the directory, not the file: editors that rename-on-save
	// would otherwise drop the watch after the first change.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		onReload: onReload,
		onError:  onError,
		fw:       fw,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(reloadDebounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.fail(err)

		case <-pending:
			pending = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.fail(err)
				continue
			}
			w.onReload(cfg)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}
