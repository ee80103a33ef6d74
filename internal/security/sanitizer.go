// Package security holds the text sanitizer and the SSRF-safe HTTP client.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"cookit/internal/domain"
)

// TextSanitizer strips markup from user supplied recipe text. The output is
// plain text, not HTML.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *TextSanitizer) Sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

// SanitizeRecipe cleans every free text field of r in place.
func (s *TextSanitizer) SanitizeRecipe(r *domain.Recipe) {
	r.Title = s.Sanitize(r.Title)
	r.Description = s.Sanitize(r.Description)
	r.Author = s.Sanitize(r.Author)
	if r.Hint != nil {
		hint := s.Sanitize(*r.Hint)
		r.Hint = &hint
	}
	for i := range r.Ingredients {
		r.Ingredients[i].Name = s.Sanitize(r.Ingredients[i].Name)
	}
	for i := range r.Steps {
		r.Steps[i].Instruction = s.Sanitize(r.Steps[i].Instruction)
	}
	for i := range r.Status {
		r.Status[i] = s.Sanitize(r.Status[i])
	}
}
