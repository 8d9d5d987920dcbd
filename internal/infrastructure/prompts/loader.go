package prompts

import (
	_ "embed"
)

//go:embed supervisor.txt
var SupervisorPromptTemplate string
