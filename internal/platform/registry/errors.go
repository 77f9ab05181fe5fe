package registry

import "errors"

// Sentinel errors for errors.Is() checking.
var (
	// ErrInvalidKey indicates an empty or blank registration key.
	ErrInvalidKey = errors.New("registry: invalid key")

	// ErrInvalidResolver indicates a resolver that does not exist, cannot be
	// instantiated, or does not yield the registry's capability.
	ErrInvalidResolver = errors.New("registry: invalid resolver")

	// ErrUnknownKey indicates a lookup for a key that is absent after
	// bootstrapping.
	ErrUnknownKey = errors.New("registry: unknown key")

	// ErrBootstrap indicates that the domain's defaults could not be
	// registered. The registry stays unbootstrapped and the next lookup
	// retries.
	ErrBootstrap = errors.New("registry: bootstrap failed")
)
