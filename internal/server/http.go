package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/douglaspoa/wordpress-react/internal/api"
)

const defaultRequestTimeout = 5 * time.Second

// requestSlack lets the upstream client timeout fire, and be reported as
// such, before the handler deadline does.
const requestSlack = time.Second

type Server struct {
	api            *api.API
	router         *mux.Router
	log            zerolog.Logger
	requestTimeout time.Duration
}

// New builds the server. upstreamTimeout is the content client timeout;
// handler deadlines sit just above it.
func New(a *api.API, log zerolog.Logger, upstreamTimeout time.Duration) *Server {
	s := &Server{api: a, router: mux.NewRouter(), log: log, requestTimeout: defaultRequestTimeout}
	if upstreamTimeout > 0 {
		s.requestTimeout = upstreamTimeout + requestSlack
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()
	err := httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// logRequests writes one access log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("latency", time.Since(start)).
			Msg("http request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
