// Package httpserver is the HTTP boundary: the hand-off page that forwards
// a deck to slides.com, plus the Streamable HTTP and SSE transports for the
// tool surface.
package httpserver

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/epicweb-dev/slides-mcp/internal/tools"
)

// Server routes the three public paths. Everything else is a 404.
type Server struct {
	log *slog.Logger

	// public, when set, overrides the per-request base URL. Used behind
	// proxies whose Host header can't be trusted.
	public *url.URL
}

// New builds a Server. public may be nil, in which case each request's own
// scheme and host determine the advertised base URL.
func New(logger *slog.Logger, public *url.URL) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{log: logger, public: public}
}

// Handler returns the root handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+tools.HandoffPath, s.handleHandoff)
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(s.serverFor, nil))
	sse := mcp.NewSSEHandler(s.serverFor)
	mux.Handle("/sse", sse)
	mux.Handle("/sse/message", sse)
	mux.HandleFunc("/", s.handleNotFound)
	return s.withLogging(mux)
}

// serverFor constructs the MCP server for one inbound request, bound to
// that request's base URL. A fresh server per request keeps hand-off links
// pointing at whichever host the caller actually reached.
func (s *Server) serverFor(r *http.Request) *mcp.Server {
	return tools.NewServer(s.baseURL(r))
}

func (s *Server) baseURL(r *http.Request) *url.URL {
	if s.public != nil {
		return s.public
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return &url.URL{Scheme: scheme, Host: r.Host}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not found", http.StatusNotFound)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush keeps the wrapper transparent to streaming handlers: the SSE and
// Streamable HTTP transports flush after every event, and events would sit
// in the buffer forever if the wrapper swallowed the Flusher.
func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
