package models

import (
	"context"
	"fmt"
	"strings"
)

// DummyLLM is a lightweight model implementation useful for local testing
// without API calls. It echoes the last non-empty prompt line behind a
// prefix.
type DummyLLM struct {
	Prefix string
}

func NewDummyLLM(prefix string) *DummyLLM {
	if strings.TrimSpace(prefix) == "" {
		prefix = "Dummy response:"
	}
	return &DummyLLM{Prefix: prefix}
}

func (d *DummyLLM) Generate(_ context.Context, prompt, _ string) (string, error) {
	lines := strings.Split(prompt, "\n")
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate != "" {
			last = candidate
			break
		}
	}
	if last == "" {
		last = "<empty prompt>"
	}
	return fmt.Sprintf("%s %s", d.Prefix, last), nil
}

func (d *DummyLLM) Chat(ctx context.Context, history []ChatTurn, prompt string, _ *Attachment) (string, error) {
	// The dummy answers the prompt alone; history length is reflected so
	// tests can assert the filtered context size.
	filtered := FilterChatHistory(history)
	return fmt.Sprintf("%s [%d turns] %s", d.Prefix, len(filtered), strings.TrimSpace(prompt)), nil
}

var _ TextModel = (*DummyLLM)(nil)
