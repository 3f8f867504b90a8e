package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alpkeskin/gotoon"

	"github.com/indomind-ai/indomind/pkg/models"
	"github.com/indomind-ai/indomind/pkg/registry"
)

// Console drives the operator conversation. Each command runs at most
// two model turns: the first may request management functions, the
// second receives every execution result and produces the confirmation
// text. Function calls in the second reply are never executed.
type Console struct {
	model      models.AdminModel
	dispatcher *Dispatcher
	log        *slog.Logger
}

// Outcome is everything one command produced: trace lines for the
// operator log, the final reply, and the updated conversation.
type Outcome struct {
	// Traces are "Executing function: ..." lines, one per dispatched call.
	Traces []string
	// Reply is the text shown to the operator.
	Reply string
	// ReplyIsNotice is set when the model went silent after executing
	// functions and Reply holds a canned acknowledgement instead.
	ReplyIsNotice bool
	// History is the conversation including this command and its reply.
	History []models.AdminTurn
	// Calls are the management calls dispatched for this command.
	Calls []models.FunctionCall
}

func NewConsole(model models.AdminModel, reg *registry.Registry, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{
		model:      model,
		dispatcher: &Dispatcher{Registry: reg},
		log:        log,
	}
}

// Command runs one operator command against the model, executes any
// requested management functions, and returns the confirmation reply.
func (c *Console) Command(ctx context.Context, history []models.AdminTurn, command string) (*Outcome, error) {
	instruction := c.systemInstruction()

	reply, err := c.model.AdminChat(ctx, models.AdminRequest{
		SystemInstruction: instruction,
		Functions:         Declarations(),
		History:           history,
		Prompt:            command,
	})
	if err != nil {
		return nil, err
	}

	// Returned history carries text turns only. The call-bearing model
	// turn exists solely inside the second request, paired with its
	// results; replaying it later without them is invalid content.
	out := &Outcome{
		History: append(append([]models.AdminTurn(nil), history...), models.AdminTurn{
			Role: models.RoleUser,
			Text: command,
		}),
	}

	if len(reply.Calls) > 0 {
		out.Calls = reply.Calls
		for _, fc := range reply.Calls {
			trace := fmt.Sprintf("Executing function: %s(%s)", fc.Name, formatArgs(fc.Args))
			out.Traces = append(out.Traces, trace)
			c.log.Info("admin function call", "function", fc.Name)
		}

		results := c.dispatcher.DispatchAll(reply.Calls)
		resumed := append(append([]models.AdminTurn(nil), out.History...), models.AdminTurn{
			Role:  models.RoleModel,
			Calls: reply.Calls,
		})

		// Second turn: hand back every result at once. The model only
		// gets to narrate here, so further calls are dropped.
		reply, err = c.model.AdminChat(ctx, models.AdminRequest{
			SystemInstruction: instruction,
			Functions:         Declarations(),
			History:           resumed,
			Results:           results,
		})
		if err != nil {
			return nil, err
		}
	}

	out.Reply = strings.TrimSpace(reply.Text)
	if out.Reply == "" {
		out.Reply = "Action completed, but no further response from AI."
		out.ReplyIsNotice = true
	} else {
		out.History = append(out.History, models.AdminTurn{
			Role: models.RoleModel,
			Text: out.Reply,
		})
	}
	return out, nil
}

// systemInstruction grounds the model in the live catalog. The full
// tool table rides along in TOON form, which stays readable for the
// model at a fraction of the JSON token cost.
func (c *Console) systemInstruction() string {
	reg := c.dispatcher.Registry
	var b strings.Builder
	b.WriteString("You are the AI Core of the Indomind platform. You can manage the platform by calling functions. The user is an admin. Respond to the admin's commands.\n")
	fmt.Fprintf(&b, "- Available tool names for toggling: %s.\n", strings.Join(reg.Names(), ", "))
	fmt.Fprintf(&b, "- Existing categories for adding new tools: %s. You can also create a new category.\n", strings.Join(reg.Categories(), ", "))
	b.WriteString("- Always confirm after executing an action.")

	if snapshot, err := gotoon.Encode(catalogRows(reg)); err == nil {
		b.WriteString("\n\nCurrent catalog:\n")
		b.WriteString(snapshot)
	}
	return b.String()
}

type catalogRow struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

func catalogRows(reg *registry.Registry) []catalogRow {
	tools := reg.List("", "")
	rows := make([]catalogRow, 0, len(tools))
	for _, t := range tools {
		rows = append(rows, catalogRow{Name: t.Name, Category: t.Category, Enabled: t.Enabled})
	}
	return rows
}

func formatArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	data, err := json.Marshal(args)
	if err != nil {
		return ""
	}
	return string(data)
}
