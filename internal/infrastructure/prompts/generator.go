package prompts

import (
	"bytes"
	"text/template"

	"finance-qa-agent/internal/application/port/output"
)

type ToolInfo struct {
	Name        string
	Description string
}

type SupervisorPromptData struct {
	Week  string
	Tools []ToolInfo
}

// GenerateSupervisorPrompt renders the LLM supervisor system prompt with the
// analysis window and the registered tool listing.
func GenerateSupervisorPrompt(baseTemplate, weekDescription string, tools output.ToolRegistry) (string, error) {
	infos := make([]ToolInfo, 0)
	for _, def := range tools.Definitions() {
		infos = append(infos, ToolInfo{
			Name:        def.Name,
			Description: def.Description,
		})
	}

	data := SupervisorPromptData{
		Week:  weekDescription,
		Tools: infos,
	}

	tmpl, err := template.New("supervisor").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
