package web

import (
	"encoding/json"
	"net/http"

	"github.com/vbonduro/kitchenlist/internal/store"
)

func (s *Server) handleListGroceries(w http.ResponseWriter, r *http.Request) {
	s.writeOK(w, map[string]any{"grocerieList": s.service.ListGroceries()})
}

func (s *Server) handleAddGroceryItem(w http.ResponseWriter, r *http.Request) {
	var d store.ItemDraft
	if err := decodeJSON(w, r, &d); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.writeOK(w, map[string]any{"grocerieList": s.service.AddGroceryItem(d)})
}

func (s *Server) handleReplaceGroceries(w http.ResponseWriter, r *http.Request) {
	var body struct {
		GrocerieList json.RawMessage `json:"grocerieList"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	items, err := s.service.ReplaceGroceries(body.GrocerieList)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"grocerieList": items})
}

func (s *Server) handleSetGroceryCompleted(w http.ResponseWriter, r *http.Request) {
	var d store.ItemDraft
	if err := decodeJSON(w, r, &d); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	item := d.Normalize()
	items, err := s.service.SetGroceryCompleted(item.Name, item.Completed)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"grocerieList": items})
}

func (s *Server) handleRemoveGroceryItem(w http.ResponseWriter, r *http.Request) {
	name, ok := s.itemName(w, r)
	if !ok {
		return
	}
	items, err := s.service.RemoveGroceryItem(name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"grocerieList": items})
}

func (s *Server) handlePurgeCompleted(w http.ResponseWriter, r *http.Request) {
	removed, remaining := s.service.PurgeCompletedGroceries()
	s.writeOK(w, map[string]any{
		"removedCount":   removed,
		"remainingCount": len(remaining),
		"grocerieList":   remaining,
	})
}
