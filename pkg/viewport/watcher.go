package viewport

import (
	"errors"
	"sync"
)

// DefaultBreakpoint is the widest viewport, in CSS pixels, that still renders
// the compact layout.
const DefaultBreakpoint = 899

// ErrNilSource is returned by Attach when no source is supplied.
var ErrNilSource = errors.New("viewport: source is required")

// Source publishes the current width and notifies listeners on every resize.
type Source interface {
	Width() int
	AddListener(fn func(width int)) (remove func())
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithBreakpoint overrides DefaultBreakpoint. Non-positive values are ignored.
func WithBreakpoint(breakpoint int) Option {
	return func(w *Watcher) {
		if breakpoint > 0 {
			w.breakpoint = breakpoint
		}
	}
}

// Watcher converts widths into the compact flag.
type Watcher struct {
	breakpoint int
	compact    bool
}

// NewWatcher constructs a watcher using DefaultBreakpoint unless overridden.
func NewWatcher(options ...Option) *Watcher {
	w := &Watcher{breakpoint: DefaultBreakpoint}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// Breakpoint reports the configured breakpoint.
func (w *Watcher) Breakpoint() int {
	return w.breakpoint
}

// IsCompact reports whether width falls in the compact bucket.
func (w *Watcher) IsCompact(width int) bool {
	return width <= w.breakpoint
}

// Observe records width and returns the resulting compact flag.
func (w *Watcher) Observe(width int) bool {
	w.compact = w.IsCompact(width)
	return w.compact
}

// Compact returns the flag from the most recent Observe call. Before any
// observation the layout is wide.
func (w *Watcher) Compact() bool {
	return w.compact
}

// Attach evaluates the source's current width immediately and again on every
// resize, calling onChange with the compact flag each time. Release the
// returned subscription to stop listening.
func (w *Watcher) Attach(src Source, onChange func(compact bool)) (*Subscription, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	handle := func(width int) {
		compact := w.Observe(width)
		if onChange != nil {
			onChange(compact)
		}
	}

	handle(src.Width())
	remove := src.AddListener(handle)
	return &Subscription{remove: remove}, nil
}

// Subscription is the handle returned by Attach.
type Subscription struct {
	once   sync.Once
	remove func()
}

// Release removes the resize listener. It is safe to call more than once and
// on a nil subscription.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.remove != nil {
			s.remove()
		}
	})
}
