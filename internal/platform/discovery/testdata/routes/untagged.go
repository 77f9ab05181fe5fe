package discovery_test

type plainRoute struct{}

func (plainRoute) Route() string { return "plain" }
