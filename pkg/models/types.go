package models

import "errors"

// Conversation roles. Anything outside these two never reaches a
// provider; FilterChatHistory strips it first.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Sentinel errors surfaced to callers. The messages are shown to end
// users as-is, so they stay human-readable.
var (
	ErrNoAudioData    = errors.New("No audio data received from API.")
	ErrVideoTimeout   = errors.New("Video generation timed out. Please try a shorter prompt or try again later.")
	ErrNoDownloadLink = errors.New("Video generation completed, but no download link was found.")
	ErrVideoDownload  = errors.New("failed to download generated video")
	ErrEmptyResponse  = errors.New("model returned an empty response")
)

// ChatTurn is one prior exchange in a chat conversation.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Attachment is an inline file the user sent along with a chat prompt.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// VideoResult carries a finished video download.
type VideoResult struct {
	Data     []byte
	MIMEType string
}

// FunctionCall is a function invocation requested by the model.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// FunctionResult is the outcome of one executed function, keyed by the
// function name it answers.
type FunctionResult struct {
	Name     string
	Response map[string]any
}

// FunctionParam describes one string parameter of a declared function.
type FunctionParam struct {
	Name        string
	Description string
	Required    bool
}

// FunctionDecl describes a function the model may call.
type FunctionDecl struct {
	Name        string
	Description string
	Params      []FunctionParam
}

// AdminTurn is one turn of the admin conversation. A turn carries
// either text or the function calls the model issued.
type AdminTurn struct {
	Role  string
	Text  string
	Calls []FunctionCall
}

// AdminRequest is one admin model exchange. When Results is set the
// request is the follow-up turn delivering function outcomes; Prompt is
// empty in that case.
type AdminRequest struct {
	SystemInstruction string
	Functions         []FunctionDecl
	History           []AdminTurn
	Prompt            string
	Results           []FunctionResult
}

// AdminReply is what the admin model answered: confirmation text,
// function calls, or both.
type AdminReply struct {
	Text  string
	Calls []FunctionCall
}

// FilterChatHistory drops turns whose role is neither user nor model.
// Admin and system traffic shares the history store but must never
// leak into a user-facing conversation.
func FilterChatHistory(history []ChatTurn) []ChatTurn {
	filtered := make([]ChatTurn, 0, len(history))
	for _, turn := range history {
		if turn.Role == RoleUser || turn.Role == RoleModel {
			filtered = append(filtered, turn)
		}
	}
	return filtered
}
