package version

// Version values are set at build time using -ldflags.
var Version = "dev"
var Built = ""
var GitCommit = ""

// String returns a printable version, falling back for dev builds.
func String() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
