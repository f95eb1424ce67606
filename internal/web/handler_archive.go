package web

import (
	"io"
	"net/http"
)

func (s *Server) handleSaveList(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	idx, total, err := s.service.SaveGroceryList(body)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeOK(w, map[string]any{"savedListId": idx, "totalSavedLists": total})
}

func (s *Server) handleListSavedLists(w http.ResponseWriter, r *http.Request) {
	lists, count := s.service.ListSavedGroceryLists()
	s.writeOK(w, map[string]any{"SavedGrocerieList": lists, "totalCount": count})
}
