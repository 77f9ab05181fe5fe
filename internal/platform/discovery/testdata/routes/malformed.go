package discovery_test

type ferryRoute struct {
	_ struct{} `route:"ferry"`

func (ferryRoute) Route( string { return "ferry" }
