package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/joestump/listing-writer/internal/config"
	"github.com/joestump/listing-writer/internal/listing"
)

// MockDisclaimer closes every mock response.
const MockDisclaimer = "(This is mock content. Set PROVIDER=openai and provide an OPENAI_API_KEY to generate real copy.)"

// Mock renders a fixed template from the request. It never calls the network.
type Mock struct{}

func (Mock) Name() string { return config.ProviderMock }

func (Mock) Generate(_ context.Context, req *listing.Request) (string, error) {
	parts := []string{
		fmt.Sprintf("Here's a sample %s description for your property:", strings.ToLower(req.OutputType)),
		strings.TrimSpace(req.PropertyDetails),
	}
	if tone := strings.TrimSpace(req.Tone); tone != "" {
		parts = append(parts, "Tone: "+tone)
	}
	if audience := strings.TrimSpace(req.Audience); audience != "" {
		parts = append(parts, "Audience: "+audience)
	}
	if req.HasWordCount() {
		parts = append(parts, fmt.Sprintf("Approximately %d words", *req.WordCount))
	}
	parts = append(parts, MockDisclaimer)
	return strings.Join(parts, "\n\n"), nil
}
