package admin

import (
	"fmt"
	"strings"

	"github.com/indomind-ai/indomind/pkg/models"
	"github.com/indomind-ai/indomind/pkg/registry"
)

// DiagnosticsReport is the canned health summary returned by
// runSystemDiagnostics. Real probes can replace it later without
// changing the function surface.
const DiagnosticsReport = "All systems nominal. GPU: 75%, API Latency: 110ms, Active Users: 1,234"

// Dispatcher executes parsed management calls against the registry.
type Dispatcher struct {
	Registry *registry.Registry
}

// Dispatch runs one call and packages the outcome for the model.
// Failures are soft: they come back as success:false payloads the model
// can relay, never as Go errors.
func (d *Dispatcher) Dispatch(fc models.FunctionCall) models.FunctionResult {
	call := ParseCall(fc)
	return models.FunctionResult{
		Name:     fc.Name,
		Response: map[string]any{"result": d.execute(call)},
	}
}

// DispatchAll executes every call in order, preserving positions so the
// second model turn sees one result per requested call.
func (d *Dispatcher) DispatchAll(calls []models.FunctionCall) []models.FunctionResult {
	results := make([]models.FunctionResult, 0, len(calls))
	for _, fc := range calls {
		results = append(results, d.Dispatch(fc))
	}
	return results
}

func (d *Dispatcher) execute(call Call) map[string]any {
	switch call.Kind {
	case CallAddTool:
		if strings.TrimSpace(call.ToolName) == "" || strings.TrimSpace(call.Category) == "" {
			return failure("Both toolName and category are required.")
		}
		d.Registry.Add(call.ToolName, call.Category)
		return success(fmt.Sprintf("Tool '%s' created.", call.ToolName))

	case CallToggleTool:
		tool, ok := d.Registry.FindByName(call.ToolName)
		if !ok {
			return failure(fmt.Sprintf("Tool '%s' not found.", call.ToolName))
		}
		if _, err := d.Registry.Toggle(tool.ID); err != nil {
			return failure(fmt.Sprintf("Tool '%s' not found.", call.ToolName))
		}
		return success(fmt.Sprintf("Tool '%s' status has been toggled.", tool.Name))

	case CallListTools:
		tools := d.Registry.List(call.Category, "")
		lines := make([]string, 0, len(tools))
		for _, t := range tools {
			state := "Disabled"
			if t.Enabled {
				state = "Enabled"
			}
			lines = append(lines, fmt.Sprintf("- %s (%s)", t.Name, state))
		}
		listing := strings.Join(lines, "\n")
		if listing == "" {
			listing = "No tools found in that category."
		}
		return map[string]any{"success": true, "tools": listing}

	case CallRunDiagnostics:
		return map[string]any{"success": true, "status": DiagnosticsReport}

	default:
		return failure(fmt.Sprintf("Unknown function: %s", call.Raw))
	}
}

func success(message string) map[string]any {
	return map[string]any{"success": true, "message": message}
}

func failure(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}
