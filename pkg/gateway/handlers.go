package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/indomind-ai/indomind/pkg/history"
	"github.com/indomind-ai/indomind/pkg/models"
)

// generateRequest is the envelope every action shares. Fields outside
// the chosen action are ignored.
type generateRequest struct {
	Action            string             `json:"action"`
	Prompt            string             `json:"prompt"`
	SystemInstruction string             `json:"systemInstruction"`
	History           []models.ChatTurn  `json:"history"`
	Attachment        *attachmentPayload `json:"attachment"`
}

type attachmentPayload struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

func (p *attachmentPayload) decode() (*models.Attachment, error) {
	if p == nil || p.Data == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, err
	}
	return &models.Attachment{MIMEType: p.MIMEType, Data: data}, nil
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx := r.Context()
	session := sessionID(r)

	switch req.Action {
	case "generateText":
		s.handleText(ctx, w, session, req)
	case "generateImage":
		s.handleImage(ctx, w, session, req)
	case "generateVideo":
		s.handleVideo(ctx, w, session, req)
	case "generateSpeech":
		s.handleSpeech(ctx, w, session, req)
	case "chat":
		s.handleChat(ctx, w, session, req)
	case "adminChat":
		s.handleAdminChat(ctx, w, session, req)
	default:
		writeError(w, http.StatusBadRequest, "Invalid action specified.")
	}
}

func (s *Server) handleText(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	text, err := s.text.Generate(ctx, req.Prompt, req.SystemInstruction)
	if err != nil {
		s.fail(w, "generateText", err)
		return
	}
	s.record(ctx, session, history.RoleUser, req.Prompt, "")
	s.record(ctx, session, history.RoleModel, text, "")
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleImage(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	images, err := s.media.GenerateImage(ctx, req.Prompt)
	if err != nil {
		s.fail(w, "generateImage", err)
		return
	}
	s.record(ctx, session, history.RoleUser, req.Prompt, "")
	writeJSON(w, http.StatusOK, map[string][]string{"images": images})
}

func (s *Server) handleVideo(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	video, err := s.media.GenerateVideo(ctx, req.Prompt)
	if err != nil {
		s.fail(w, "generateVideo", err)
		return
	}
	s.record(ctx, session, history.RoleUser, req.Prompt, "")

	mime := video.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	w.Header().Set("Content-Type", mime)
	w.WriteHeader(http.StatusOK)
	w.Write(video.Data)
}

func (s *Server) handleSpeech(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	audio, err := s.media.GenerateSpeech(ctx, req.Prompt)
	if err != nil {
		s.fail(w, "generateSpeech", err)
		return
	}
	s.record(ctx, session, history.RoleUser, req.Prompt, "")
	writeJSON(w, http.StatusOK, map[string]string{"base64Audio": audio})
}

func (s *Server) handleChat(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	attachment, err := req.Attachment.decode()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid attachment encoding.")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" && attachment == nil {
		writeError(w, http.StatusBadRequest, "Empty prompt received.")
		return
	}

	text, err := s.text.Chat(ctx, models.FilterChatHistory(req.History), req.Prompt, attachment)
	if err != nil {
		s.fail(w, "chat", err)
		return
	}
	s.record(ctx, session, history.RoleUser, req.Prompt, "")
	s.record(ctx, session, history.RoleModel, text, "")
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleAdminChat(ctx context.Context, w http.ResponseWriter, session string, req generateRequest) {
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Empty prompt received.")
		return
	}

	turns := make([]models.AdminTurn, 0, len(req.History))
	for _, t := range models.FilterChatHistory(req.History) {
		turns = append(turns, models.AdminTurn{Role: t.Role, Text: t.Text})
	}

	out, err := s.console.Command(ctx, turns, req.Prompt)
	if err != nil {
		s.fail(w, "adminChat", err)
		return
	}

	s.record(ctx, session, history.RoleAdmin, req.Prompt, history.ContextAdmin)
	for _, trace := range out.Traces {
		s.record(ctx, session, history.RoleSystem, trace, history.ContextAdmin)
	}
	replyRole := history.RoleModel
	if out.ReplyIsNotice {
		replyRole = history.RoleSystem
	}
	s.record(ctx, session, replyRole, out.Reply, history.ContextAdmin)

	writeJSON(w, http.StatusOK, map[string]any{
		"text":          out.Reply,
		"functionCalls": out.Calls,
	})
}

// fail maps a provider error onto the single 500 boundary. The error
// text is the user-facing message, so it passes through unchanged.
func (s *Server) fail(w http.ResponseWriter, action string, err error) {
	s.log.Error("action failed", "action", action, "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

// record appends one history line. Logging failures never fail the
// request that produced them.
func (s *Server) record(ctx context.Context, session, role, text, contextTag string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	err := s.history.Append(ctx, history.Entry{
		SessionID: session,
		Role:      role,
		Text:      text,
		Context:   contextTag,
	})
	if err != nil {
		s.log.Warn("history append failed", "session", session, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
