package forge

// GlobalEnable combines the four platform run conditions into the single
// global enable line. It is a plain 4-input AND: any one condition held false
// keeps the whole platform at rest, there is no priority among them.
func GlobalEnable(forgeReady, userEnable, clkEnable, loaderDone bool) bool {
	return forgeReady && userEnable && clkEnable && loaderDone
}
