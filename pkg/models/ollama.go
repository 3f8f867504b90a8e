package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// ---------------------------- Ollama -----------------------------------------

type OllamaLLM struct {
	Client *ollama.Client
	Model  string
}

func NewOllamaLLM(model string) (*OllamaLLM, error) {
	host := os.Getenv("OLLAMA_HOST")
	if host == "" {
		host = "http://localhost:11434"
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", host, err)
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	c := ollama.NewClient(u, httpClient)
	if model == "" {
		model = "llama3.2"
	}
	return &OllamaLLM{Client: c, Model: model}, nil
}

func (o *OllamaLLM) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	var text strings.Builder
	req := &ollama.GenerateRequest{
		Model:  o.Model,
		Prompt: prompt,
		System: systemInstruction,
	}

	if err := o.Client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		if gr.Response != "" {
			text.WriteString(gr.Response)
		}
		return nil
	}); err != nil {
		return "", err
	}
	return text.String(), nil
}

func (o *OllamaLLM) Chat(ctx context.Context, history []ChatTurn, prompt string, attachment *Attachment) (string, error) {
	messages := []ollama.Message{{Role: "system", Content: ChatPersona}}
	for _, turn := range FilterChatHistory(history) {
		role := "user"
		if turn.Role == RoleModel {
			role = "assistant"
		}
		messages = append(messages, ollama.Message{Role: role, Content: turn.Text})
	}

	userMsg := ollama.Message{Role: "user", Content: prompt}
	if attachment != nil && strings.HasPrefix(attachment.MIMEType, "image/") {
		userMsg.Images = []ollama.ImageData{ollama.ImageData(attachment.Data)}
	}
	messages = append(messages, userMsg)

	var text strings.Builder
	req := &ollama.ChatRequest{
		Model:    o.Model,
		Messages: messages,
	}
	if err := o.Client.Chat(ctx, req, func(cr ollama.ChatResponse) error {
		if cr.Message.Content != "" {
			text.WriteString(cr.Message.Content)
		}
		return nil
	}); err != nil {
		return "", err
	}
	return text.String(), nil
}

var _ TextModel = (*OllamaLLM)(nil)
