package api

import (
	"net/http"
)

type statusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:   "ok",
		Version:  s.Version,
		Sessions: s.Sessions.Count(),
	})
}
