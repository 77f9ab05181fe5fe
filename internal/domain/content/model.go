package content

import (
	"fmt"
	"net/url"
)

// Model is a local stand-in for a hosted model. Its generators echo the
// input under the model's display name.
type Model struct {
	name string
	slug string
}

// NewModel returns a model shown as name whose image links use slug.
func NewModel(name, slug string) *Model {
	return &Model{name: name, slug: slug}
}

// TextGenerator implements ModelFactory.
func (m *Model) TextGenerator() Generator {
	return textGenerator{name: m.name}
}

// ImageGenerator implements ModelFactory.
func (m *Model) ImageGenerator() Generator {
	return imageGenerator{name: m.name, slug: m.slug}
}

type textGenerator struct {
	name string
}

func (g textGenerator) Generate(prompt string) string {
	return fmt.Sprintf("%s generated text based on: %s", g.name, prompt)
}

type imageGenerator struct {
	name string
	slug string
}

func (g imageGenerator) Generate(description string) string {
	return fmt.Sprintf("https://images.local/%s?prompt=%s", g.slug, url.QueryEscape(description))
}
