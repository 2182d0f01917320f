package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long Watch waits after the last write before
// reloading. Editors often write a file in several steps.
const DebounceInterval = 150 * time.Millisecond

// Watch reloads the layout at path whenever it changes and hands the result to
// onChange. A document that fails to load is reported through err and the
// watch goes on. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Document, error)) error {
	return watch(ctx, path, DebounceInterval, onChange)
}

func watch(ctx context.Context, path string, debounce time.Duration, onChange func(*Document, error)) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so replace-by-rename saves are still seen.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if isLayoutChange(ev, target) {
				resetTimer(timer, debounce, pending)
				pending = true
			}
		case <-timer.C:
			if pending {
				pending = false
				onChange(Load(target))
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, fmt.Errorf("watch %s: %w", target, werr))
		}
	}
}

func isLayoutChange(ev fsnotify.Event, target string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return filepath.Clean(name) == filepath.Clean(target)
}

func resetTimer(timer *time.Timer, debounce time.Duration, pending bool) {
	if !timer.Stop() && pending {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(debounce)
}
