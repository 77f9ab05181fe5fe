package discovery_test

type ghostRoute struct {
	_ struct{} `route:"ghost"`
}

func (ghostRoute) Route() string { return "ghost" }
