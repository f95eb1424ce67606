package web

import (
	"encoding/json"
	"net/http"

	"github.com/vbonduro/kitchenlist/internal/store"
)

func (s *Server) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	s.writeOK(w, map[string]any{"ingredients": s.service.ListIngredients()})
}

func (s *Server) handleAddIngredient(w http.ResponseWriter, r *http.Request) {
	var d store.ItemDraft
	if err := decodeJSON(w, r, &d); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.writeOK(w, map[string]any{"ingredients": s.service.AddIngredient(d)})
}

func (s *Server) handleReplaceIngredients(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Ingredients json.RawMessage `json:"ingredients"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	items, err := s.service.ReplaceIngredients(body.Ingredients)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"ingredients": items})
}

func (s *Server) handleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	name, ok := s.itemName(w, r)
	if !ok {
		return
	}
	items, err := s.service.RemoveIngredient(name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"ingredients": items})
}

// itemName reads the target name from a {"name": ...} body, falling back to
// the "name" query parameter when the body has none.
func (s *Server) itemName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var d store.ItemDraft
	if err := decodeJSON(w, r, &d); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	name := d.Normalize().Name
	if name == "" {
		name = r.URL.Query().Get("name")
	}
	return name, true
}
