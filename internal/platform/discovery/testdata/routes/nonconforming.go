package discovery_test

type brokenRoute struct {
	_ struct{} `route:"broken"`
}
