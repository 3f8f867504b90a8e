package models

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ---------------------------- Google Gemini ----------------------------------

// Model names for each generation surface.
const (
	GeminiFlashModel  = "gemini-2.5-flash"
	GeminiImageModel  = "imagen-4.0-generate-001"
	GeminiSpeechModel = "gemini-2.5-flash-preview-tts"
	GeminiVideoModel  = "veo-3.1-fast-generate-preview"
)

// ChatPersona is the system instruction applied to plain chat sessions.
const ChatPersona = "You are Indomind, a powerful and helpful AI assistant with deep expertise in global cuisine and cooking techniques. When asked about non-cooking topics, answer helpfully, but always try to subtly relate it back to food or cooking if possible."

// DefaultPollInterval and DefaultMaxPollAttempts bound the video operation
// poll loop (~100 seconds total) so serverless-style callers time out
// cleanly instead of hanging.
const (
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxPollAttempts = 20
)

// GeminiOptions configure the Gemini client. The zero value works as long
// as an API key is present in the environment.
type GeminiOptions struct {
	APIKey          string
	Model           string
	PollInterval    time.Duration
	MaxPollAttempts int

	// HTTPClient and BaseURL override the media REST transport; tests use
	// them to point at a stub server.
	HTTPClient *http.Client
	BaseURL    string
}

// GeminiLLM implements TextModel, MediaModel and AdminModel against the
// Google AI API. Text, chat and function calling go through the official
// SDK; image, speech and video use the REST surfaces the SDK does not bind.
type GeminiLLM struct {
	Client *genai.Client
	Model  string
	media  *mediaClient
}

// NewGeminiLLM constructs a client. The API key comes from the options or
// from API_KEY / GEMINI_API_KEY; a missing key is a hard failure.
func NewGeminiLLM(ctx context.Context, opts GeminiOptions) (*GeminiLLM, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("missing API_KEY or GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = GeminiFlashModel
	}
	return &GeminiLLM{
		Client: client,
		Model:  model,
		media:  newMediaClient(apiKey, opts),
	}, nil
}

// Generate performs a single-turn completion with an optional system
// instruction.
func (g *GeminiLLM) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	model := g.Client.GenerativeModel(g.Model)
	if strings.TrimSpace(systemInstruction) != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

// Chat continues a conversation. History must already be role-filtered by
// the caller; a second filter here keeps a malformed context out of the
// provider regardless.
func (g *GeminiLLM) Chat(ctx context.Context, history []ChatTurn, prompt string, attachment *Attachment) (string, error) {
	model := g.Client.GenerativeModel(g.Model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(ChatPersona)}}

	cs := model.StartChat()
	for _, turn := range FilterChatHistory(history) {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	var parts []genai.Part
	if strings.TrimSpace(prompt) != "" {
		parts = append(parts, genai.Text(prompt))
	}
	if attachment != nil && len(attachment.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: attachment.MIMEType, Data: attachment.Data})
	}
	if len(parts) == 0 {
		return "", errors.New("empty prompt received")
	}

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini chat: %w", err)
	}
	return responseText(resp)
}

// AdminChat submits one turn of the admin protocol: conversation history,
// the declared function catalog, and either a fresh command or the results
// of a previously requested call batch.
func (g *GeminiLLM) AdminChat(ctx context.Context, req AdminRequest) (AdminReply, error) {
	model := g.Client.GenerativeModel(g.Model)
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	}
	if len(req.Functions) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: functionDeclarations(req.Functions)}}
	}

	cs := model.StartChat()
	for _, turn := range req.History {
		cs.History = append(cs.History, adminTurnContent(turn))
	}

	var parts []genai.Part
	if len(req.Results) > 0 {
		for _, result := range req.Results {
			parts = append(parts, genai.FunctionResponse{Name: result.Name, Response: result.Response})
		}
	} else {
		parts = append(parts, genai.Text(req.Prompt))
	}

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return AdminReply{}, fmt.Errorf("gemini admin chat: %w", err)
	}
	return parseAdminReply(resp)
}

// GenerateImage produces one 1:1 JPEG image and returns it as a data URI.
func (g *GeminiLLM) GenerateImage(ctx context.Context, prompt string) ([]string, error) {
	return g.media.generateImage(ctx, prompt)
}

// GenerateSpeech returns base64-encoded audio for the prompt.
func (g *GeminiLLM) GenerateSpeech(ctx context.Context, prompt string) (string, error) {
	return g.media.generateSpeech(ctx, prompt)
}

// GenerateVideo starts a long-running video operation, polls it to
// completion within the configured budget and downloads the asset.
func (g *GeminiLLM) GenerateVideo(ctx context.Context, prompt string) (VideoResult, error) {
	return g.media.generateVideo(ctx, prompt)
}

func adminTurnContent(turn AdminTurn) *genai.Content {
	content := &genai.Content{Role: turn.Role}
	if turn.Text != "" {
		content.Parts = append(content.Parts, genai.Text(turn.Text))
	}
	for _, call := range turn.Calls {
		content.Parts = append(content.Parts, genai.FunctionCall{Name: call.Name, Args: call.Args})
	}
	return content
}

func functionDeclarations(decls []FunctionDecl) []*genai.FunctionDeclaration {
	out := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, decl := range decls {
		schema := &genai.Schema{
			Type:       genai.TypeObject,
			Properties: make(map[string]*genai.Schema, len(decl.Params)),
		}
		for _, param := range decl.Params {
			schema.Properties[param.Name] = &genai.Schema{
				Type:        genai.TypeString,
				Description: param.Description,
			}
			if param.Required {
				schema.Required = append(schema.Required, param.Name)
			}
		}
		out = append(out, &genai.FunctionDeclaration{
			Name:        decl.Name,
			Description: decl.Description,
			Parameters:  schema,
		})
	}
	return out
}

func parseAdminReply(resp *genai.GenerateContentResponse) (AdminReply, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return AdminReply{}, ErrEmptyResponse
	}

	var reply AdminReply
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			reply.Calls = append(reply.Calls, FunctionCall{Name: p.Name, Args: p.Args})
		}
	}
	reply.Text = text.String()
	return reply, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}
