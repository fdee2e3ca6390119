package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/futureaiitofficial/prosumeai-sub012/internal/types"
)

// Suggester produces AI-assisted content suggestions. The zero value (or a
// Suggester with a nil client) returns UnavailableError from every method so
// the API degrades cleanly when no key is configured.
type Suggester struct {
	client Client
}

// NewSuggester wraps a Client. A nil client is allowed.
func NewSuggester(client Client) *Suggester {
	return &Suggester{client: client}
}

// Available reports whether a backend is configured.
func (s *Suggester) Available() bool {
	return s != nil && s.client != nil
}

// SuggestSummary drafts a professional summary for the resume, optionally
// tailored to a job description.
func (s *Suggester) SuggestSummary(ctx context.Context, resume *types.Resume, jobDescription string) (string, error) {
	if !s.Available() {
		return "", &UnavailableError{Reason: "no client configured"}
	}

	p := formatPrompt(prompt("suggest-summary"), map[string]string{
		"Resume": resume.PlainText(),
		"Job":    jobDescription,
	})
	out, err := s.client.GenerateContent(ctx, p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RewriteBullet rewrites a single bullet point to lead with an action verb
// and quantify impact.
func (s *Suggester) RewriteBullet(ctx context.Context, bullet, jobDescription string) (string, error) {
	if !s.Available() {
		return "", &UnavailableError{Reason: "no client configured"}
	}

	p := formatPrompt(prompt("rewrite-bullet"), map[string]string{
		"Bullet": bullet,
		"Job":    jobDescription,
	})
	out, err := s.client.GenerateContent(ctx, p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// SuggestKeywords lists job description keywords the resume is missing.
func (s *Suggester) SuggestKeywords(ctx context.Context, resume *types.Resume, jobDescription string) ([]string, error) {
	if !s.Available() {
		return nil, &UnavailableError{Reason: "no client configured"}
	}

	p := formatPrompt(prompt("suggest-keywords"), map[string]string{
		"Resume": resume.PlainText(),
		"Job":    jobDescription,
	})
	out, err := s.client.GenerateJSON(ctx, p)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := json.Unmarshal([]byte(out), &keywords); err != nil {
		return nil, &GenerationError{Message: "model returned malformed keyword list", Cause: err}
	}
	return keywords, nil
}
