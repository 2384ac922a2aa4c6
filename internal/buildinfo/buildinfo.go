// Package buildinfo carries identifiers stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X stereo/internal/buildinfo.Version=v0.3.0 -X stereo/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the compact identifier shown in the HUD and window title.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Full lists every known identifier, for startup logs.
func Full() string {
	s := Short()
	if Commit != "" && Commit != "unknown" && Commit != s {
		s += " (" + Commit + ")"
	}
	if Date != "" && Date != "unknown" {
		s = fmt.Sprintf("%s built %s", s, Date)
	}
	return s
}
