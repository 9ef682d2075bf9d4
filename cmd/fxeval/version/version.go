package version

import (
	"fmt"
	"regexp"
	"runtime"
	"strconv"
)

const fmtVersion = "v%v.%v.%v-%x"

var (
	// Set with ldflags, e.g.
	//  -ldflags "-X 'github.com/govalues/fixed/cmd/fxeval/version.Version=v0.2.0'"
	Version   string
	GitCommit string

	majorVer  uint64 = 0
	minorVer  uint64 = 1
	patchVer  uint64 = 0
	commitVer uint64 = 0
)

func init() {
	if err := parseVersions(Version, GitCommit); err != nil {
		panic(err)
	}
}

var reVersion = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)`)

func parseVersions(versionStr, gitCommit string) error {
	if versionStr == "" {
		return nil
	}
	matches := reVersion.FindStringSubmatch(versionStr)
	if matches == nil {
		return fmt.Errorf("invalid version string: %v", versionStr)
	}
	majorVer, _ = strconv.ParseUint(matches[1], 10, 64)
	minorVer, _ = strconv.ParseUint(matches[2], 10, 64)
	patchVer, _ = strconv.ParseUint(matches[3], 10, 64)

	if gitCommit != "" {
		var err error
		commitVer, err = strconv.ParseUint(gitCommit, 16, 64)
		if err != nil {
			return fmt.Errorf("invalid git commit %v: %w", gitCommit, err)
		}
	}
	return nil
}

func String() string {
	return fmt.Sprintf(fmtVersion, majorVer, minorVer, patchVer, commitVer)
}

// Runtime returns the Go version and platform of the binary.
func Runtime() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
