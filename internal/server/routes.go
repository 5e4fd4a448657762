package http

import (
	"net/http"
)

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": s.api.Health()})
	}).Methods(http.MethodGet)

	s.router.HandleFunc("/global", s.handleGlobal).Methods(http.MethodGet)
	s.router.HandleFunc("/posts", s.handleAllPosts).Methods(http.MethodGet)
	s.router.HandleFunc("/posts/{slug}", s.handlePost).Methods(http.MethodGet)
	s.router.HandleFunc("/posts/{slug}/related", s.handleRelatedPosts).Methods(http.MethodGet)
	s.router.HandleFunc("/authors/{slug}", s.handleAuthor).Methods(http.MethodGet)
	s.router.HandleFunc("/authors/{id:[0-9]+}/posts", s.handleAuthorPosts).Methods(http.MethodGet)
	s.router.HandleFunc("/diagnostics/failures", s.handleFailures).Methods(http.MethodGet)
}
