// Package portal hosts the white-labeled web portal: login, tenant/label
// context selection, and the themed application pages behind the context
// guard.
package portal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/message"

	"github.com/brandgate/brandgate/internal/auth"
	"github.com/brandgate/brandgate/internal/platform/branding"
	"github.com/brandgate/brandgate/internal/platform/timeouts"
	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/session"
	portali18n "github.com/brandgate/brandgate/internal/services/portal/i18n"
	"github.com/brandgate/brandgate/internal/services/portal/static"
	"github.com/brandgate/brandgate/internal/services/portal/templates"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	"github.com/brandgate/brandgate/internal/theme"
)

// Config defines the inputs for the portal HTTP server.
type Config struct {
	HTTPAddr string
	AppName  string
}

// Server hosts the portal HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	appName    string
	auth       auth.Authenticator
	sessions   *session.Store
	principals *principalRegistry
}

// basePage builds the layout context for pages rendered outside an
// active tenant/label context. They carry the base theme.
func (h *handler) basePage(loc templates.Localizer, lang string) templates.PageContext {
	return templates.PageContext{
		Lang:    lang,
		Loc:     loc,
		AppName: h.appName,
		Theme:   theme.Base(),
	}
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := portali18n.ResolveTag(r)
	if setCookie {
		portali18n.SetLanguageCookie(w, tag)
	}
	return portali18n.Printer(tag), tag.String()
}

// NewHandler creates the portal HTTP handler. The catalog source backs a
// per-session context store, so tenant data is fetched lazily on the first
// navigation that needs it.
func NewHandler(config Config, authenticator auth.Authenticator, sessions *session.Store, source catalog.Source) (http.Handler, error) {
	if authenticator == nil {
		return nil, errors.New("authenticator is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if source == nil {
		return nil, errors.New("catalog source is required")
	}

	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	h := &handler{
		appName:    appName,
		auth:       authenticator,
		sessions:   sessions,
		principals: newPrincipalRegistry(source),
	}

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	mux.HandleFunc(routepath.Login, h.handleLogin)
	mux.HandleFunc(routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.SelectContext, h.handleSelectContext)
	mux.HandleFunc(routepath.AppRoot, h.handleApp)
	mux.HandleFunc(routepath.AppRoot+"/", h.handleApp)

	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		if sess, ok := h.sessionFromRequest(r); ok && sess.Authenticated() {
			http.Redirect(w, r, routepath.SelectContext, http.StatusFound)
			return
		}
		http.Redirect(w, r, routepath.Login, http.StatusFound)
	})

	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return mux, nil
}

// NewServer builds a configured portal server.
func NewServer(config Config, authenticator auth.Authenticator, sessions *session.Store, source catalog.Source) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	handler, err := NewHandler(config, authenticator, sessions, source)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portal server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("portal listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
