package buildinfo

// These are stamped at release time via -ldflags; the zero values mark a
// local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
