package discovery_test

type expressRoute struct {
	_ struct{} `route:"highway"`
}

func (expressRoute) Route() string { return "express" }
