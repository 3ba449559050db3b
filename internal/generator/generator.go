package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"sat_prep_backend/internal/llm"
)

// Generator produces SAT practice content through an llm.Provider.
// All output is schema-validated by the provider and then checked by the
// structural validators before being handed back.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Section generates one full practice section of the given type,
// optionally focused on a topic category.
func (g *Generator) Section(ctx context.Context, sectionType, category string) (*GeneratedSection, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildSectionPrompt(sectionType, category, g.cfg),
		Schema:      SectionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var sec GeneratedSection
	if err := json.Unmarshal(resp.Content, &sec); err != nil {
		return nil, fmt.Errorf("decode generated section: %w", err)
	}

	if err := validateSection(&sec, g.cfg); err != nil {
		return nil, err
	}

	return &sec, nil
}

// FollowUp generates one supplementary question for a primary question.
func (g *Generator) FollowUp(ctx context.Context, questionText, answer string) (*GeneratedFollowUp, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		User:        buildFollowUpPrompt(questionText, answer, g.cfg),
		Schema:      FollowUpSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var f GeneratedFollowUp
	if err := json.Unmarshal(resp.Content, &f); err != nil {
		return nil, fmt.Errorf("decode generated follow-up: %w", err)
	}

	if err := validateFollowUp(&f, g.cfg); err != nil {
		return nil, err
	}

	return &f, nil
}
