package settings

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads the settings whenever the backing file is written and sends
// the normalized result on the returned channel until ctx is done. The
// watcher sits on the directory, not the file, so editors that replace the
// file on save keep being observed.
func (st *Store) Watch(ctx context.Context) (<-chan Settings, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create settings watcher")
	}
	dir := filepath.Dir(st.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	ch := make(chan Settings, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(st.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				s, err := st.Load()
				if err != nil {
					st.log.Warnf("settings reload failed: %v", err)
					continue
				}
				st.log.Debugf("settings reloaded from %s", st.path)
				// keep only the latest value; single producer, so the
				// drain cannot race another send
				select {
				case <-ch:
				default:
				}
				ch <- s
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				st.log.Warnf("settings watcher: %v", err)
			}
		}
	}()
	return ch, nil
}
