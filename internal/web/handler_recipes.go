package web

import (
	"context"
	"net/http"

	"github.com/vbonduro/kitchenlist/internal/store"
)

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	s.writeOK(w, map[string]any{"recipes": s.service.ListRecipes()})
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	var d store.RecipeDraft
	if err := decodeJSON(w, r, &d); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// The file write-through must finish even if the client goes away.
	recipe, recipes, err := s.service.CreateRecipe(context.WithoutCancel(r.Context()), d)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"recipe": recipe, "recipes": recipes})
}
