// Package version expone la versión del binario, fijada con -ldflags.
package version

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func Info() map[string]string {
	return map[string]string{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}
}
