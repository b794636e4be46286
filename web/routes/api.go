package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *ServerHandler) ListProjects(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.Content.Profile().Projects)
}

func (s *ServerHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.Content.Profile().ProjectByID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "project not found")

		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (s *ServerHandler) ListSkills(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.Content.Profile().Skills)
}

func (s *ServerHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
