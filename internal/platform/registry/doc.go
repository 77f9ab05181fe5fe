// Package registry provides a generic, per-domain keyed store of resolvers
// for pluggable capability implementations.
//
// A Registry is parameterized by the capability contract C every entry must
// yield. Entries are registered under case-insensitive keys with one of two
// resolver kinds:
//
//	reg := registry.New[maintenance.RequestFactory]("maintenance",
//	    registry.WithBootstrapper(maintenance.Defaults),
//	    registry.WithInjector(injector),
//	)
//
//	// Type reference: conformance is checked now, instantiation goes
//	// through the do injector so tagged dependencies are filled in.
//	err := reg.Register("engine", registry.TypeOf[maintenance.EngineFactory]())
//
//	// Factory function: conformance can only be checked when it runs.
//	err = reg.Register("custom", registry.Factory(func() (any, error) {
//	    return customFactory{}, nil
//	}))
//
//	factory, err := reg.Get("ENGINE")
//
// Get bootstraps the registry with its domain defaults the first time a key
// is missing. Bootstrap may also be called at startup to surface
// configuration errors before the first request.
//
// Registries are safe for concurrent use. Bootstrapped entries are staged
// in a local map and published under the write lock in a single step, so
// readers never observe a partially populated registry.
package registry
