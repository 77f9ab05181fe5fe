package maintenance

import (
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

// Issue types handled by the built-in factories.
const (
	IssueEngine     = "engine"
	IssueTires      = "tires"
	IssueElectrical = "electrical"
)

// EngineFactory creates EngineHandlers.
type EngineFactory struct {
	Logger *slog.Logger `do:""`
}

// CreateHandler implements RequestFactory.
func (f EngineFactory) CreateHandler() Handler {
	return &EngineHandler{logger: f.Logger}
}

// TiresFactory creates TiresHandlers.
type TiresFactory struct {
	Logger *slog.Logger `do:""`
}

// CreateHandler implements RequestFactory.
func (f TiresFactory) CreateHandler() Handler {
	return &TiresHandler{logger: f.Logger}
}

// ElectricalFactory creates ElectricalHandlers.
type ElectricalFactory struct {
	Logger *slog.Logger `do:""`
}

// CreateHandler implements RequestFactory.
func (f ElectricalFactory) CreateHandler() Handler {
	return &ElectricalHandler{logger: f.Logger}
}

// Defaults registers the built-in factories. It is the bootstrapper of
// maintenance registries.
func Defaults(reg registry.Registrar) error {
	return errors.Join(
		reg.Register(IssueEngine, registry.TypeOf[EngineFactory]()),
		reg.Register(IssueTires, registry.TypeOf[TiresFactory]()),
		reg.Register(IssueElectrical, registry.TypeOf[ElectricalFactory]()),
	)
}

// NewRegistry returns a maintenance registry bootstrapped with Defaults.
func NewRegistry(opts ...registry.Option) *registry.Registry[RequestFactory] {
	return registry.New[RequestFactory]("maintenance",
		append([]registry.Option{registry.WithBootstrapper(Defaults)}, opts...)...)
}
