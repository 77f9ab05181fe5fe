// Package content generates text and images with a pluggable model. Each
// model is a ModelFactory producing one generator per medium.
package content

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/fleet-dispatch/internal/domain"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

// DefaultModel is used when a request names no model.
const DefaultModel = "gpt"

// Generator turns an input into generated content.
type Generator interface {
	Generate(input string) string
}

// ModelFactory creates the generators of one model. It is the capability
// content registries dispatch on.
type ModelFactory interface {
	TextGenerator() Generator
	ImageGenerator() Generator
}

// Request asks a model to generate content from Input.
type Request struct {
	Model string
	Input string
}

// ModelOrDefault returns the requested model, or DefaultModel when none was
// named.
func (r *Request) ModelOrDefault() string {
	if m := strings.TrimSpace(r.Model); m != "" {
		return m
	}
	return DefaultModel
}

// Validate checks that the request carries an input. field names the input
// in the error, since text and image requests call it differently.
func (r *Request) Validate(field string) error {
	if strings.TrimSpace(r.Input) == "" {
		return domain.NewFieldError(field, domain.MsgRequired)
	}
	return nil
}

// Defaults registers the built-in models as factory functions.
func Defaults(reg registry.Registrar) error {
	return errors.Join(
		reg.Register("gpt", registry.Factory(func() (any, error) {
			return NewModel("GPT", "gpt"), nil
		})),
		reg.Register("claude", registry.Factory(func() (any, error) {
			return NewModel("Claude", "claude"), nil
		})),
	)
}

// NewRegistry returns a content registry bootstrapped with Defaults.
func NewRegistry(opts ...registry.Option) *registry.Registry[ModelFactory] {
	return registry.New[ModelFactory]("content",
		append([]registry.Option{registry.WithBootstrapper(Defaults)}, opts...)...)
}
