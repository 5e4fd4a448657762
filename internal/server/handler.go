package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/douglaspoa/wordpress-react/internal/api"
	"github.com/douglaspoa/wordpress-react/internal/content"
)

func (s *Server) handleGlobal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.api.GlobalData())
}

func (s *Server) handleAllPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if lenient(r) {
		writeJSON(w, http.StatusOK, s.api.Lenient().AllPosts(ctx))
		return
	}
	posts, err := s.api.AllPosts(ctx)
	s.respond(w, posts, err)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if lenient(r) {
		writeJSON(w, http.StatusOK, api.OrEmpty(s.api.Lenient().Post(ctx, slug)))
		return
	}
	post, err := s.api.Post(ctx, slug)
	s.respond(w, post, err)
}

func (s *Server) handleRelatedPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if lenient(r) {
		writeJSON(w, http.StatusOK, s.api.Lenient().RelatedPosts(ctx, slug))
		return
	}
	posts, err := s.api.RelatedPosts(ctx, slug)
	s.respond(w, posts, err)
}

func (s *Server) handleAuthor(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if lenient(r) {
		writeJSON(w, http.StatusOK, api.OrEmpty(s.api.Lenient().Author(ctx, slug)))
		return
	}
	author, err := s.api.Author(ctx, slug)
	s.respond(w, author, err)
}

func (s *Server) handleAuthorPosts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid author id", "")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	if lenient(r) {
		writeJSON(w, http.StatusOK, s.api.Lenient().AuthorPosts(ctx, id))
		return
	}
	posts, err := s.api.AuthorPosts(ctx, id)
	s.respond(w, posts, err)
}

func (s *Server) handleFailures(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	items, err := s.api.RecentFailures(ctx, limit, offset)
	switch {
	case errors.Is(err, api.ErrNoSink):
		writeError(w, http.StatusServiceUnavailable, err.Error(), "")
	case err != nil:
		s.log.Error().Err(err).Msg("query failures")
		writeError(w, http.StatusInternalServerError, "query error: "+err.Error(), "")
	default:
		if items == nil {
			items = []content.Failure{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

// respond maps adapter errors to HTTP statuses: not found is 404, every
// upstream failure is 502.
func (s *Server) respond(w http.ResponseWriter, v any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, v)
		return
	}
	kind := content.KindOf(err)
	if kind == content.KindNotFound {
		writeError(w, http.StatusNotFound, "not found", string(kind))
		return
	}
	s.log.Warn().Err(err).Str("kind", string(kind)).Msg("upstream content error")
	writeError(w, http.StatusBadGateway, err.Error(), string(kind))
}

func lenient(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("lenient"))
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	body := map[string]any{"error": msg}
	if kind != "" {
		body["kind"] = kind
	}
	writeJSON(w, status, body)
}
