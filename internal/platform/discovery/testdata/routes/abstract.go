package discovery_test

type router interface {
	Route() string
}

type pooledRoute[T any] struct {
	_    struct{} `route:"pooled"`
	pool []T
}
