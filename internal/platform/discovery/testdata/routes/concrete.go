package discovery_test

type cityRoute struct {
	_ struct{} `route:"City"`
}

func (cityRoute) Route() string { return "city" }

type highwayRoute struct {
	_ struct{} `route:"highway"`
}

func (*highwayRoute) Route() string { return "highway" }
