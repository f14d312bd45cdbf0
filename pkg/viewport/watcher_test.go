package viewport_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/viewport"
)

func TestWatcher_Breakpoint(t *testing.T) {
	w := viewport.NewWatcher()
	cases := map[int]bool{
		320:  true,
		899:  true,
		900:  false,
		1440: false,
	}
	for width, want := range cases {
		if got := w.Observe(width); got != want {
			t.Fatalf("width %d: want compact=%v, got %v", width, want, got)
		}
		if w.Compact() != want {
			t.Fatalf("width %d: Compact() out of sync", width)
		}
	}
}

func TestWatcher_WithBreakpoint(t *testing.T) {
	w := viewport.NewWatcher(viewport.WithBreakpoint(79), viewport.WithBreakpoint(0))
	if w.Breakpoint() != 79 {
		t.Fatalf("expected breakpoint 79, got %d", w.Breakpoint())
	}
	if !w.IsCompact(79) || w.IsCompact(80) {
		t.Fatalf("unexpected bucket around custom breakpoint")
	}
}

func TestWatcher_AttachEvaluatesImmediatelyAndOnResize(t *testing.T) {
	window := viewport.NewWindow(1200)
	w := viewport.NewWatcher()

	var seen []bool
	sub, err := w.Attach(window, func(compact bool) {
		seen = append(seen, compact)
	})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	window.Resize(899)
	window.Resize(900)

	if diff := cmp.Diff([]bool{false, true, false}, seen); diff != "" {
		t.Fatalf("compact sequence mismatch (-want +got):\n%s", diff)
	}

	sub.Release()
	sub.Release()
	if window.Listeners() != 0 {
		t.Fatalf("expected listener removed, %d remain", window.Listeners())
	}

	window.Resize(400)
	if len(seen) != 3 {
		t.Fatalf("released subscription must not observe resizes")
	}
}

func TestWatcher_AttachNilSource(t *testing.T) {
	_, err := viewport.NewWatcher().Attach(nil, nil)
	if !errors.Is(err, viewport.ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
	var sub *viewport.Subscription
	sub.Release()
}

func TestWidthFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/?width=640", nil)
	if width, ok := viewport.WidthFromRequest(req); !ok || width != 640 {
		t.Fatalf("expected query width 640, got %d (%v)", width, ok)
	}

	req.Header.Set(viewport.HeaderViewportWidth, "1024")
	if width, ok := viewport.WidthFromRequest(req); !ok || width != 1024 {
		t.Fatalf("expected client hint to win, got %d (%v)", width, ok)
	}

	bad := httptest.NewRequest("GET", "/?width=wide", nil)
	bad.Header.Set(viewport.HeaderLegacyViewportWidth, "-3")
	if _, ok := viewport.WidthFromRequest(bad); ok {
		t.Fatalf("expected invalid widths rejected")
	}
}
