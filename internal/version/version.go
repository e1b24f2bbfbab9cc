// Package version reports build information.
//
// The variables are set at build time, e.g.
//
//	go build -ldflags "-X github.com/biztime-dev/biztime/internal/version.version=v1.2.0 \
//	  -X github.com/biztime-dev/biztime/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/biztime-dev/biztime/internal/version.gitCommit=$(git rev-parse --short HEAD)" ./cmd/biztime-server
package version

import "runtime/debug"

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Get returns the build information. When the binary was built without ldflags the
// commit is taken from the embedded VCS information if available.
func Get() Info {
	info := Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}

	if info.GitCommit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range bi.Settings {
				switch setting.Key {
				case "vcs.revision":
					info.GitCommit = setting.Value
				case "vcs.time":
					if info.BuildDate == "unknown" {
						info.BuildDate = setting.Value
					}
				}
			}
		}
	}
	return info
}
