// Package prompt assembles completion requests from the HR policy,
// optional resume text, and the employee question.
package prompt

import (
	"bytes"
	"fmt"

	"github.com/konantech/hr-assistant/internal/llm"
)

const (
	defaultMaxResumeChars = 3000
	defaultMaxTokens      = 600
	defaultTemperature    = 0.2
)

// Builder builds llm.PromptRequest values. It is pure: no side
// effects, no provider calls.
type Builder struct {
	policy         string
	maxResumeChars int
	maxTokens      int64
	temperature    float64
}

// NewBuilder returns a Builder. Empty policy uses DefaultPolicy; a
// non-positive maxResumeChars uses the default resume limit.
func NewBuilder(policy string, maxResumeChars int) *Builder {
	if policy == "" {
		policy = DefaultPolicy
	}
	if maxResumeChars <= 0 {
		maxResumeChars = defaultMaxResumeChars
	}
	return &Builder{
		policy:         policy,
		maxResumeChars: maxResumeChars,
		maxTokens:      defaultMaxTokens,
		temperature:    defaultTemperature,
	}
}

// Compose builds the provider request for one question. Resume text
// beyond the configured limit is truncated before inclusion.
func (b *Builder) Compose(question, resumeText string) (llm.PromptRequest, error) {
	if len(resumeText) > b.maxResumeChars {
		resumeText = resumeText[:b.maxResumeChars]
	}

	data := struct {
		Policy string
		Resume string
	}{
		Policy: b.policy,
		Resume: resumeText,
	}

	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, data); err != nil {
		return llm.PromptRequest{}, fmt.Errorf("failed to build prompt: %w", err)
	}

	return llm.PromptRequest{
		System:      buf.String(),
		User:        question,
		MaxTokens:   b.maxTokens,
		Temperature: b.temperature,
	}, nil
}
