package trip

import (
	"embed"
	"io/fs"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/discovery"
	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

//go:embed *.go
var sources embed.FS

// Sources returns the package's own source files, the default tree the
// trip scanner reads.
func Sources() fs.FS {
	return sources
}

// Types returns the types of this package discovery may load.
func Types() []registry.TypeRef {
	return []registry.TypeRef{
		registry.TypeOf[LocalStrategy](),
		registry.TypeOf[InterCityStrategy](),
		registry.TypeOf[InternationalStrategy](),
	}
}

// NewScanner returns a strategy scanner whose default root is Sources.
func NewScanner(opts ...discovery.Option) *discovery.Scanner[Strategy] {
	opts = append([]discovery.Option{discovery.WithDefaultRoot(Sources())}, opts...)
	return discovery.New[Strategy](discovery.NewCatalog(Types()...), TagKey, opts...)
}

// NewRegistry returns a strategy registry bootstrapped from s.
func NewRegistry(s *discovery.Scanner[Strategy], opts ...registry.Option) *registry.Registry[Strategy] {
	return registry.New[Strategy]("trip",
		append([]registry.Option{registry.WithBootstrapper(s.Bootstrapper())}, opts...)...)
}
