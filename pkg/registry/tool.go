package registry

import "strings"

// HandlerKind names the generation surface a tool drives.
type HandlerKind int

const (
	HandlerText HandlerKind = iota
	HandlerChat
	HandlerImage
	HandlerVideo
	HandlerSpeech
	HandlerTranscribe
)

var handlerKindNames = map[HandlerKind]string{
	HandlerText:       "text",
	HandlerChat:       "chat",
	HandlerImage:      "image",
	HandlerVideo:      "video",
	HandlerSpeech:     "speech",
	HandlerTranscribe: "transcribe",
}

func (k HandlerKind) String() string {
	if name, ok := handlerKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Handler is the explicit implemented-or-placeholder variant attached to a
// tool. A placeholder tool appears in the catalog but cannot be selected;
// the zero value is a placeholder.
type Handler struct {
	kind        HandlerKind
	implemented bool
}

// Implemented returns a handler bound to the given generation surface.
func Implemented(kind HandlerKind) Handler {
	return Handler{kind: kind, implemented: true}
}

// Placeholder returns the handler used for cataloged but unbuilt tools.
func Placeholder() Handler {
	return Handler{}
}

// Kind reports the generation surface and whether the tool is implemented.
func (h Handler) Kind() (HandlerKind, bool) {
	return h.kind, h.implemented
}

// Tool is one catalog entry describing a selectable capability.
type Tool struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Implemented bool    `json:"isImplemented"`
	Enabled     bool    `json:"enabled"`
	Handler     Handler `json:"-"`
}

// Selectable reports whether the tool may be opened by an end user.
// Placeholder tools render as "under development" and are a no-op.
func (t Tool) Selectable() bool {
	return t.Implemented && t.Enabled
}

func (t Tool) matchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func (t Tool) matchesCategory(category string) bool {
	if category == "" || strings.EqualFold(category, "All") {
		return true
	}
	return strings.EqualFold(t.Category, category)
}
