package console

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"ragview/internal/render"
	"ragview/internal/view"
)

// statusResponse is the JSON response for the status endpoint.
type statusResponse struct {
	Connected         bool   `json:"connected"`
	BackendURL        string `json:"backend_url"`
	GroqAPIConfigured bool   `json:"groq_api_configured"`
	Error             string `json:"error,omitempty"`
}

// urlRequest is the JSON body shared by the index and scrape endpoints.
type urlRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{BackendURL: s.backend.BaseURL()}

	health, err := s.backend.Health(r.Context())
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Connected = true
	resp.GroqAPIConfigured = health.GroqAPIConfigured
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	sources := s.controller.RefreshSources(r.Context())
	writeFragment(w, http.StatusOK, render.SourceList(sources))
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	sourceURL := r.URL.Query().Get("source_url")
	if sourceURL == "" {
		writeFragment(w, http.StatusBadRequest, render.ErrorPanel("source_url is required"))
		return
	}

	// Confirmation happens in the page before this request is sent.
	msg, _ := s.controller.DeleteSource(r.Context(), sourceURL, nil)
	writeFragment(w, http.StatusOK, bubble(msg))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFragment(w, http.StatusBadRequest, render.ErrorPanel("invalid request body"))
		return
	}

	msg, err := s.controller.IndexURL(r.Context(), req.URL)
	switch {
	case errors.Is(err, view.ErrEmptyInput):
		writeFragment(w, http.StatusBadRequest, render.ErrorPanel("Please enter a URL"))
	case errors.Is(err, view.ErrBusy):
		writeFragment(w, http.StatusConflict, render.ErrorPanel("Indexing is already in progress"))
	default:
		// Success and backend failures both produced a chat message.
		writeFragment(w, http.StatusOK, bubble(msg))
	}
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFragment(w, http.StatusBadRequest, render.ErrorPanel("invalid request body"))
		return
	}

	result, err := s.controller.Scrape(r.Context(), req.URL)
	switch {
	case errors.Is(err, view.ErrEmptyInput):
		writeFragment(w, http.StatusBadRequest, render.ErrorPanel("Please enter a URL"))
		return
	case errors.Is(err, view.ErrBusy):
		writeFragment(w, http.StatusConflict, render.ErrorPanel("A scrape is already in progress"))
		return
	case err != nil:
		writeFragment(w, http.StatusBadGateway, render.ErrorPanel(err.Error()))
		return
	}

	fragment, err := render.ScrapeResultHTML(result)
	if err != nil {
		writeFragment(w, http.StatusInternalServerError, render.ErrorPanel("rendering failed"))
		return
	}
	writeFragment(w, http.StatusOK, fragment)
}

// bubble renders a feed message as a chat bubble fragment.
func bubble(msg view.Message) template.HTML {
	return render.ChatBubble(string(msg.Kind), render.Markdown(msg.Content), msg.Sources)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFragment(w http.ResponseWriter, status int, fragment template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(fragment))
}
