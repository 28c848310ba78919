package llm

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/joestump/listing-writer/internal/listing"
)

// ComplianceReminder is always the final line of a prompt.
const ComplianceReminder = "Avoid mentioning any demographic, familial, or personal characteristics."

//go:embed prompt.tmpl
var promptSource string

var promptTemplate = template.Must(template.New("prompt").Parse(promptSource))

// PromptData holds the variables available in the prompt template. Zero values
// are omitted from the rendered prompt, except OutputType.
type PromptData struct {
	PropertyDetails string
	Tone            string
	Audience        string
	OutputType      string
	WordCount       int
	Reminder        string
}

// BuildPrompt renders the instruction text sent to the remote provider.
// Output depends only on req.
func BuildPrompt(req *listing.Request) (string, error) {
	data := PromptData{
		PropertyDetails: strings.TrimSpace(req.PropertyDetails),
		Tone:            strings.TrimSpace(req.Tone),
		Audience:        strings.TrimSpace(req.Audience),
		OutputType:      strings.TrimSpace(req.OutputType),
		Reminder:        ComplianceReminder,
	}
	if req.HasWordCount() {
		data.WordCount = *req.WordCount
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
