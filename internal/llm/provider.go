package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the content-generation backend. Callers send a
// Request and get structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema the provider asks for structured
	// output and the returned Content is schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// User is the user message. Section generation is single-turn, so a
	// single message is all we need.
	User string

	// Schema is the JSON Schema the response must conform to. When nil
	// the response Content is the raw text wrapped as JSON.
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (used as the structured
	// output schema name).
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output. Schema-validated JSON when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
