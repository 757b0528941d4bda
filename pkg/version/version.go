package version

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// These are set at build time using -ldflags
var (
	GitSource   string
	GitTag      string
	GitBranch   string
	GitHash     string
	GoBuildTime string
)
