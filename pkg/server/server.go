package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/openapi"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
	"github.com/goliatone/go-signup/pkg/viewport"
)

// Timeouts applied by ListenAndServe.
const (
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request and submission logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer replaces the HTML renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithTranslator localizes page copy and validation messages.
func WithTranslator(t render.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

// WithTheme applies a resolved theme to every render.
func WithTheme(theme *render.ThemeConfig) Option {
	return func(s *Server) {
		s.theme = theme
	}
}

// WithBreakpoint sets the compact layout breakpoint in CSS pixels.
func WithBreakpoint(breakpoint int) Option {
	return func(s *Server) {
		if breakpoint > 0 {
			s.breakpoint = breakpoint
		}
	}
}

// WithDefaultLocale sets the locale used when a request does not pick one.
func WithDefaultLocale(locale string) Option {
	return func(s *Server) {
		if locale != "" {
			s.locale = locale
		}
	}
}

// WithAssetPrefix mounts static assets under prefix.
func WithAssetPrefix(prefix string) Option {
	return func(s *Server) {
		if prefix = strings.TrimRight(strings.TrimSpace(prefix), "/"); prefix != "" {
			s.assetPrefix = prefix
		}
	}
}

// WithAssetsDir serves files from dir ahead of the embedded assets, which is
// how the decorative image is supplied.
func WithAssetsDir(dir string) Option {
	return func(s *Server) {
		if dir = strings.TrimSpace(dir); dir != "" {
			s.assetsDir = dir
		}
	}
}

// WithSuccessHandler runs fn after every valid submission.
func WithSuccessHandler(fn component.SuccessHandler) Option {
	return func(s *Server) {
		s.onSuccess = fn
	}
}

// Server wires the sign-up handlers into a chi router.
type Server struct {
	router      chi.Router
	logger      *zap.Logger
	renderer    render.Renderer
	translator  render.Translator
	theme       *render.ThemeConfig
	onSuccess   component.SuccessHandler
	breakpoint  int
	locale      string
	assetPrefix string
	assetsDir   string
	apiDoc      []byte
}

// New builds the server and its routes.
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:      zap.NewNop(),
		breakpoint:  viewport.DefaultBreakpoint,
		assetPrefix: render.DefaultAssetPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.locale != "" {
		state := model.NewFormState()
		if err := state.SetLocale(s.locale); err != nil {
			return nil, fmt.Errorf("server: default locale: %w", err)
		}
		s.locale = state.Locale
	}

	if s.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.renderer = renderer
	}

	doc, err := openapi.MarshalJSON(context.Background())
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.apiDoc = doc

	s.router = s.routes()
	return s, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("sign-up server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get(openapi.PagePath, s.handlePage)
	r.Post(openapi.SubmitPath, s.handleSubmit)
	r.Get("/openapi.json", s.handleOpenAPI)
	r.Get(openapi.HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix(s.assetPrefix, http.FileServer(http.FS(s.assetsFS())))
	r.Handle(s.assetPrefix+"/*", assets)
	return r
}

func (s *Server) assetsFS() fs.FS {
	if s.assetsDir == "" {
		return vanilla.AssetsFS()
	}
	return layeredFS{os.DirFS(s.assetsDir), vanilla.AssetsFS()}
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.apiDoc)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestID", middleware.GetReqID(r.Context())),
		)
	})
}

// layeredFS opens names from the first filesystem that has them.
type layeredFS []fs.FS

func (l layeredFS) Open(name string) (fs.File, error) {
	var firstErr error
	for _, fsys := range l {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fs.ErrNotExist
	}
	return nil, firstErr
}
