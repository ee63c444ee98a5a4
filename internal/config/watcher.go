package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts editors produce when
// saving a file.
const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a declaration file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, so
// rename-and-replace saves keep working. Reload results go to the
// OnReload callback; load failures go to OnError and the watch
// continues, keeping the last good declarations in effect.
type Watcher struct {
	path     string
	debounce time.Duration

	onReload func(*File)
	onError  func(error)

	fsw       *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// WatchFile starts watching a declaration file. Both callbacks are
// invoked from the watch goroutine and must not block.
func WatchFile(path string, onReload func(*File), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: defaultDebounce,
		onReload: onReload,
		onError:  onError,
		fsw:      fsw,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(err)
		case <-timer.C:
			w.reload()
		}
	}
}

// relevant reports whether an event concerns the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Name != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	file, err := Load(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	w.onReload(file)
}
