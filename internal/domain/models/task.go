package models

// Agent is a persona that shapes how a task is answered.
type Agent struct {
	Role      string `json:"role"`
	Goal      string `json:"goal"`
	Backstory string `json:"backstory"`
}

// TaskSpec is one prompt submitted to the LLM.
// Context names earlier tasks of the same batch whose output is injected into the prompt.
type TaskSpec struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ExpectedOutput string   `json:"expected_output"`
	Agent          Agent    `json:"agent"`
	Context        []string `json:"context,omitempty"`
}

// TaskResult is the raw text returned for one task.
type TaskResult struct {
	TaskName string `json:"task_name"`
	Raw      string `json:"raw"`
}
