package viewport

import "sync"

// Window is an in-memory Source. Resize dispatches to every listener
// synchronously, in registration order, on the caller's goroutine.
type Window struct {
	mu        sync.Mutex
	width     int
	nextID    int
	listeners map[int]func(int)
	order     []int
}

// NewWindow creates a window with the given initial width.
func NewWindow(width int) *Window {
	return &Window{
		width:     width,
		listeners: make(map[int]func(int)),
	}
}

// Width returns the current width.
func (w *Window) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Resize updates the width and notifies listeners.
func (w *Window) Resize(width int) {
	w.mu.Lock()
	w.width = width
	fns := make([]func(int), 0, len(w.order))
	for _, id := range w.order {
		if fn, ok := w.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(width)
	}
}

// AddListener registers fn and returns a function that removes it.
func (w *Window) AddListener(fn func(int)) func() {
	if fn == nil {
		return func() {}
	}

	w.mu.Lock()
	if w.listeners == nil {
		w.listeners = make(map[int]func(int))
	}
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	w.order = append(w.order, id)
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
		for i, existing := range w.order {
			if existing == id {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
}

// Listeners reports how many listeners are registered.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}
