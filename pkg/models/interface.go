package models

import "context"

// TextModel is the text/chat generation surface. Every provider in this
// package implements it.
type TextModel interface {
	Generate(ctx context.Context, prompt, systemInstruction string) (string, error)
	Chat(ctx context.Context, history []ChatTurn, prompt string, attachment *Attachment) (string, error)
}

// MediaModel is the image/speech/video surface. Gemini is the only provider
// carrying it.
type MediaModel interface {
	GenerateImage(ctx context.Context, prompt string) ([]string, error)
	GenerateSpeech(ctx context.Context, prompt string) (string, error)
	GenerateVideo(ctx context.Context, prompt string) (VideoResult, error)
}

// AdminModel is the function-calling surface used by the admin channel.
type AdminModel interface {
	AdminChat(ctx context.Context, req AdminRequest) (AdminReply, error)
}
