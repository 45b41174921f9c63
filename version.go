package barter

// Release is the semantic version of this build.
const Release = "v0.1.0-dev"

// GitCommit is set with -ldflags "-X github.com/iov-one/barter.GitCommit=..."
var GitCommit = ""

// Version returns the release followed by the commit, when known.
func Version() string {
	if GitCommit == "" {
		return Release
	}
	return Release + " " + GitCommit
}
