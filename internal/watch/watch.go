// Package watch provides OS-native file change notifications for re-running
// the variant analysis while a source file is being edited.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bit mask of file operations observed in one event.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event is one file change notification.
type Event struct {
	Path string
	Op   Op
}

// Reanalyze reports whether the event should trigger a fresh analysis of the
// file. Chmod-only events do not change content.
func (e Event) Reanalyze() bool {
	return e.Op&(OpCreate|OpWrite|OpRename) != 0
}

// Watcher wraps fsnotify for OS-native notifications.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// New creates a Watcher and starts its event loop.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				close(fw.evC)
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			if ev.Op&fsnotify.Chmod != 0 {
				op |= OpChmod
			}
			fw.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

// Events returns the channel of mapped file events.
func (fw *Watcher) Events() <-chan Event { return fw.evC }

// Errors returns the channel of watcher errors.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Add starts watching the named file or directory.
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Remove stops watching the named file or directory.
func (fw *Watcher) Remove(name string) error { return fw.w.Remove(name) }

// Close shuts the watcher down.
func (fw *Watcher) Close() error { return fw.w.Close() }
