package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/openclaw/terminal-qr/script"
	"github.com/openclaw/terminal-qr/session"
)

type countRequest struct {
	Text string `json:"text"`
}

type countResponse struct {
	Length int    `json:"length"`
	Max    int    `json:"max"`
	OK     bool   `json:"ok"`
	Label  string `json:"label"`
}

type generateRequest struct {
	Text          string `json:"text"`
	TerminalWidth string `json:"terminal_width"`
	PreviewWidth  string `json:"preview_width"`
}

type dialectRequest struct {
	Dialect string `json:"dialect"`
}

type dialectResponse struct {
	*session.View
	Dialect     script.Dialect `json:"dialect"`
	Regenerated bool           `json:"regenerated"`
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, release := s.Sessions.acquire(w, r)
	count := sess.InputChanged(req.Text)
	release()

	writeJSON(w, http.StatusOK, countResponse{
		Length: count.Length,
		Max:    count.Max,
		OK:     count.OK(),
		Label:  count.String(),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, release := s.Sessions.acquire(w, r)
	defer release()

	view, err := sess.Generate(session.Input{
		Text:          req.Text,
		TerminalWidth: req.TerminalWidth,
		PreviewWidth:  req.PreviewWidth,
	})
	if err != nil {
		writeError(w, errorStatus(err), session.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDialect(w http.ResponseWriter, r *http.Request) {
	var req dialectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := script.ParseDialect(req.Dialect)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, release := s.Sessions.acquire(w, r)
	defer release()

	view, err := sess.SwitchDialect(d)
	if err != nil {
		writeError(w, errorStatus(err), session.UserMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, dialectResponse{
		View:        view,
		Dialect:     d,
		Regenerated: view != nil,
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, release := s.Sessions.acquire(w, r)
	defer release()

	preview, err := sess.Preview()
	if err != nil {
		writeError(w, errorStatus(err), session.UserMessage(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(preview))
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	sess, release := s.Sessions.acquire(w, r)
	defer release()

	text, err := sess.Script()
	if err != nil {
		writeError(w, errorStatus(err), session.UserMessage(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess, release := s.Sessions.acquire(w, r)
	defer release()

	dl, err := sess.Download()
	if err != nil {
		writeError(w, errorStatus(err), session.UserMessage(err))
		return
	}

	s.Log.Info("script downloaded", "file", dl.FileName, "bytes", len(dl.Body))
	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write(dl.Body)
}

// errorStatus maps controller errors onto HTTP status codes.
func errorStatus(err error) int {
	var (
		capErr   *session.CapacityError
		widthErr *session.WidthError
		encErr   *session.EncodeError
	)
	switch {
	case errors.Is(err, session.ErrEmptyInput), errors.As(err, &capErr), errors.As(err, &widthErr),
		errors.Is(err, session.ErrUnknownDialect):
		return http.StatusBadRequest
	case errors.As(err, &encErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNoMatrix):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
