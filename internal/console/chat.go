package console

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"ragview/internal/api"
	"ragview/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type    string `json:"type"` // "ask"
	Content string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format. HTML carries
// the server-rendered bubble; Content the raw text for non-HTML uses.
type chatResponse struct {
	Type    string            `json:"type"` // "response" or "error"
	Content string            `json:"content"`
	HTML    string            `json:"html"`
	Sources []api.QuerySource `json:"sources,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("console: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("console: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "invalid message format")
			continue
		}

		switch req.Type {
		case "ask":
			s.handleAsk(conn, r, req)
		default:
			s.sendError(conn, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleAsk(conn *websocket.Conn, r *http.Request, req chatRequest) {
	msg, err := s.controller.Ask(r.Context(), req.Content)
	switch {
	case errors.Is(err, view.ErrEmptyInput):
		s.sendError(conn, "question is required")
		return
	case errors.Is(err, view.ErrBusy):
		s.sendError(conn, "a question is already in flight")
		return
	}

	// Backend failures were recorded as an error message in the feed;
	// either way the terminal message is what the page shows.
	resp := chatResponse{
		Type:    "response",
		Content: msg.Content,
		HTML:    string(bubble(msg)),
		Sources: msg.Sources,
	}
	if msg.Kind == view.KindError {
		resp.Type = "error"
	}
	s.sendResponse(conn, resp)
}

func (s *Server) sendResponse(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("console: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	resp := chatResponse{
		Type:    "error",
		Content: message,
		HTML:    string(bubble(view.Message{Kind: view.KindError, Content: message})),
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("console: websocket write error: %v", err)
	}
}
