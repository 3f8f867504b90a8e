package models

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicLLM implements TextModel using Anthropic's Messages API.
type AnthropicLLM struct {
	Client    *anthropic.Client
	Model     string
	MaxTokens int
}

// NewAnthropicLLM constructs a client. It reads ANTHROPIC_API_KEY from the env.
func NewAnthropicLLM(model string) *AnthropicLLM {
	key := os.Getenv("ANTHROPIC_API_KEY")
	cl := anthropic.NewClient(
		anthropicopt.WithAPIKey(key),
	)
	if model == "" {
		model = "claude-3-5-sonnet-latest"
	}
	return &AnthropicLLM{
		Client:    &cl,
		Model:     model,
		MaxTokens: 1024,
	}
}

// Generate performs a single-turn completion and returns concatenated text.
func (a *AnthropicLLM) Generate(ctx context.Context, prompt, systemInstruction string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.Model),
		MaxTokens: int64(a.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if systemInstruction != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemInstruction}}
	}

	msg, err := a.Client.Messages.New(ctx, params)
	if err != nil {
		return "", err
	}
	return anthropicText(msg), nil
}

func (a *AnthropicLLM) Chat(ctx context.Context, history []ChatTurn, prompt string, attachment *Attachment) (string, error) {
	var messages []anthropic.MessageParam
	for _, turn := range FilterChatHistory(history) {
		block := anthropic.NewTextBlock(turn.Text)
		if turn.Role == RoleModel {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	blocks := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)}
	if attachment != nil && strings.HasPrefix(attachment.MIMEType, "image/") {
		encoded := base64.StdEncoding.EncodeToString(attachment.Data)
		blocks = append(blocks, anthropic.NewImageBlockBase64(attachment.MIMEType, encoded))
	}
	messages = append(messages, anthropic.NewUserMessage(blocks...))

	msg, err := a.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.Model),
		MaxTokens: int64(a.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: ChatPersona}},
		Messages:  messages,
	})
	if err != nil {
		return "", err
	}
	return anthropicText(msg), nil
}

func anthropicText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String()
}

var _ TextModel = (*AnthropicLLM)(nil)
