package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags "-X github.com/mutablelogic/go-openai/pkg/version.GitTag=..."
var (
	GitTag    string
	GitBranch string
)

const (
	// Product name sent in the User-Agent header
	Product = "go-openai"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or short revision of the build, or "dev".
func Version() string {
	switch {
	case GitTag != "":
		return GitTag
	case GitBranch != "":
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// UserAgent returns the default User-Agent for API requests,
// for example "go-openai/v1.0.0 (go1.25.0; linux/amd64)".
func UserAgent() string {
	return Product + "/" + Version() + " (" + runtime.Version() + "; " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}

// JSON returns build metadata for the named executable
func JSON(execName string) []byte {
	metadata := map[string]string{
		"name":       execName,
		"version":    Version(),
		"compiler":   runtime.Version(),
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
		"user_agent": UserAgent(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			metadata["source"] = info.Main.Path
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				metadata["hash"] = s.Value
			case "vcs.time":
				metadata["build_time"] = s.Value
			}
		}
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
