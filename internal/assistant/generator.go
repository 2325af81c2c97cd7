// Package assistant produces canned assistant replies from keyword templates.
package assistant

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/model"
)

var _ model.Responder = (*Generator)(nil)

// Generator maps free text to an assistant message. It has no side effects.
type Generator struct {
	templates []Template
	fallback  string
	now       func() time.Time
	newID     func() string
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDs overrides the message id source.
func WithIDs(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// NewGenerator creates a Generator over templates, checked in order.
// A nil list selects DefaultTemplates.
func NewGenerator(templates []Template, opts ...Option) *Generator {
	if templates == nil {
		templates = DefaultTemplates()
	}

	g := &Generator{
		templates: lowerKeywords(templates),
		fallback:  Fallback,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Match returns the first template with a keyword contained in input.
func (g *Generator) Match(input string) (Template, bool) {
	lower := strings.ToLower(input)
	for _, t := range g.templates {
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				return t, true
			}
		}
	}
	return Template{}, false
}

// Respond builds the assistant reply for input.
func (g *Generator) Respond(input string) model.Message {
	msg := model.Message{
		ID:        g.newID(),
		Role:      model.RoleAssistant,
		Content:   g.fallback,
		CreatedAt: g.now(),
	}

	if t, ok := g.Match(input); ok {
		msg.Content = t.Response
		if len(t.Attachments) > 0 {
			msg.Attachments = append([]model.Attachment(nil), t.Attachments...)
		}
	}

	return msg
}

func lowerKeywords(in []Template) []Template {
	out := make([]Template, len(in))
	for i, t := range in {
		out[i] = t
		out[i].Keywords = make([]string, len(t.Keywords))
		for j, kw := range t.Keywords {
			out[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	return out
}
