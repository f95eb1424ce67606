package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vbonduro/kitchenlist/internal/store"
)

const maxBodySize = 1 << 20 // 1 MB

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response failed", "error", err)
	}
}

func (s *Server) writeOK(w http.ResponseWriter, body map[string]any) {
	body["ok"] = true
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}

// writeServiceError maps store sentinel errors to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrMissingName):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
