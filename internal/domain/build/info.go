// Package build carries the version stamped into the binary at link time.
package build

import "fmt"

// RepoURL is the project home.
const RepoURL = "https://github.com/bnema/dumbhint"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short renders "version (commit)", dropping unknown parts.
func (i Info) Short() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return v
	}
	c := i.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", v, c)
}
