package viewport

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Client hint headers browsers send once the server opts in via Accept-CH.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
	QueryWidth                = "width"
)

// AcceptCH is the Accept-CH value servers send to request viewport hints.
const AcceptCH = HeaderViewportWidth + ", " + HeaderLegacyViewportWidth

// WidthFromRequest extracts the viewport width from client hints, falling back
// to the width query parameter. The boolean is false when no usable width was
// supplied.
func WidthFromRequest(r *http.Request) (int, bool) {
	if r == nil {
		return 0, false
	}
	for _, header := range []string{HeaderViewportWidth, HeaderLegacyViewportWidth} {
		if width, ok := parseWidth(r.Header.Get(header)); ok {
			return width, true
		}
	}
	if r.URL != nil {
		if width, ok := parseWidth(r.URL.Query().Get(QueryWidth)); ok {
			return width, true
		}
	}
	return 0, false
}

// TerminalWidth returns the column count of the terminal behind fd.
func TerminalWidth(fd int) (int, bool) {
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func parseWidth(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	width, err := strconv.Atoi(trimmed)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
