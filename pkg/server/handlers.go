package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/viewport"
)

func (s *Server) newComponent() *component.Component {
	state := model.NewFormState()
	if s.locale != "" {
		state.Locale = s.locale
	}
	return component.New(
		component.WithState(state),
		component.WithLogger(s.logger),
		component.WithBreakpoint(s.breakpoint),
		component.WithSuccessHandler(s.onSuccess),
	)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	comp := s.newComponent()
	if raw := r.URL.Query().Get(model.FieldLocale); raw != "" {
		if err := comp.ChooseLocale(raw); err != nil {
			s.logger.Debug("ignoring unsupported locale", zap.String("locale", raw))
		}
	}

	width, known := viewport.WidthFromRequest(r)
	s.respond(w, r, comp, width, known, http.StatusOK, false)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	comp := s.newComponent()
	if err := bindForm(comp, r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := comp.Submit(r.Context())
	if err != nil {
		s.logger.Error("submit failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	width, known := formWidth(r)
	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	s.respond(w, r, comp, width, known, status, result.Valid)
}

// respond mounts comp on a one-shot window of the reported width, renders
// and writes the page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, comp *component.Component, width int, known bool, status int, submitted bool) {
	hidden := map[string]string{}
	if known {
		if err := comp.Mount(viewport.NewWindow(width)); err != nil {
			s.logger.Error("mount component", zap.Error(err))
		}
		defer comp.Unmount()
		hidden[viewport.QueryWidth] = strconv.Itoa(width)
	}

	body, err := s.renderer.Render(r.Context(), comp.State(), render.RenderOptions{
		Translator:   s.translator,
		Theme:        s.theme,
		AssetPrefix:  s.assetPrefix,
		Breakpoint:   s.breakpoint,
		Submitted:    submitted,
		HiddenFields: hidden,
	})
	if err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.Header().Set("Accept-CH", viewport.AcceptCH)
	w.Header().Set("Vary", viewport.AcceptCH)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// bindForm replays the posted values as component events.
func bindForm(comp *component.Component, r *http.Request) error {
	form := r.PostForm

	if raw := form.Get(model.FieldLocale); raw != "" {
		if err := comp.ChooseLocale(raw); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}

	comp.ChangeEmail(form.Get(model.FieldEmail))
	comp.ChangePassword(form.Get(model.FieldPassword))
	comp.SetCheckbox(isChecked(form.Get(model.FieldTerms)))

	if isChecked(form.Get(model.FieldOptionsExpanded)) {
		comp.ToggleOptions()
	}

	for _, group := range model.PreferenceGroups {
		raw := form.Get(string(group))
		if raw == "" {
			continue
		}
		choice, err := model.ParseChoice(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", group, err)
		}
		if err := comp.ChoosePreference(group, choice); err != nil {
			return fmt.Errorf("%s: %w", group, err)
		}
	}
	return nil
}

// formWidth prefers the width the page posted back over request hints.
func formWidth(r *http.Request) (int, bool) {
	if raw := strings.TrimSpace(r.PostForm.Get(viewport.QueryWidth)); raw != "" {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width, true
		}
	}
	return viewport.WidthFromRequest(r)
}

func isChecked(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "true", "yes":
		return true
	default:
		return false
	}
}
