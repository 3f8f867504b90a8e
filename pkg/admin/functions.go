// Package admin implements the operator console: a function-calling
// conversation in which the model manages the tool catalog on the
// operator's behalf.
package admin

import (
	"fmt"

	"github.com/indomind-ai/indomind/pkg/models"
)

// CallKind identifies which management function the model requested.
type CallKind int

const (
	CallUnknown CallKind = iota
	CallAddTool
	CallToggleTool
	CallListTools
	CallRunDiagnostics
)

// Call is a parsed management function invocation. Only the fields
// relevant to its Kind are populated.
type Call struct {
	Kind     CallKind
	Raw      string // function name as the model sent it
	ToolName string
	Category string
}

// ParseCall maps a raw model function call onto the management catalog.
// Names are matched case-sensitively; anything else comes back as
// CallUnknown so the dispatcher can answer with a soft error instead of
// failing the whole exchange.
func ParseCall(fc models.FunctionCall) Call {
	call := Call{Raw: fc.Name}
	switch fc.Name {
	case "addTool":
		call.Kind = CallAddTool
		call.ToolName = stringArg(fc.Args, "toolName")
		call.Category = stringArg(fc.Args, "category")
	case "toggleToolStatus":
		call.Kind = CallToggleTool
		call.ToolName = stringArg(fc.Args, "toolName")
	case "listTools":
		call.Kind = CallListTools
		call.Category = stringArg(fc.Args, "category")
	case "runSystemDiagnostics":
		call.Kind = CallRunDiagnostics
	default:
		call.Kind = CallUnknown
	}
	return call
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	if v, ok := args[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Declarations describes the management catalog to the model. The
// descriptions double as the model's only documentation, so they spell
// out argument expectations explicitly.
func Declarations() []models.FunctionDecl {
	return []models.FunctionDecl{
		{
			Name:        "addTool",
			Description: "Adds a new tool to the user dashboard. The tool is a placeholder and not fully implemented.",
			Params: []models.FunctionParam{
				{Name: "toolName", Description: "The name of the new tool to create.", Required: true},
				{Name: "category", Description: "The category the new tool belongs to.", Required: true},
			},
		},
		{
			Name:        "toggleToolStatus",
			Description: "Enables or disables an existing tool for all users.",
			Params: []models.FunctionParam{
				{Name: "toolName", Description: "The exact name of the tool to enable or disable.", Required: true},
			},
		},
		{
			Name:        "listTools",
			Description: "Lists all available tools, optionally filtering by category.",
			Params: []models.FunctionParam{
				{Name: "category", Description: "The optional category to filter the tool list by.", Required: false},
			},
		},
		{
			Name:        "runSystemDiagnostics",
			Description: "Runs a full system health check and reports the status.",
		},
	}
}
