// Package llm narrates intake history facts with an OpenAI-compatible chat
// model.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

const hpiSystemPrompt = `You write the History of Present Illness paragraph of a clinical intake note.
Use only the facts given. Do not add diagnoses, advice or facts that are not listed.
Write third person, past tense where natural, one paragraph, no headings.`

var ErrEmptyCompletion = errors.New("llm returned no content")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Elaborator turns structured HPI facts into a narrative paragraph.
type Elaborator struct {
	client *openai.Client
	model  string
}

func NewElaborator(cfg Config) *Elaborator {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Elaborator{client: openai.NewClientWithConfig(oc), model: model}
}

func (e *Elaborator) ElaborateHPI(ctx context.Context, chiefComplaint string, facts []string) (string, error) {
	if len(facts) == 0 {
		return "", errors.New("no facts to elaborate")
	}
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: hpiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(chiefComplaint, facts)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func userPrompt(chiefComplaint string, facts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chief complaint: %s\nFacts:\n", chiefComplaint)
	for _, f := range facts {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteByte('\n')
	}
	return b.String()
}
