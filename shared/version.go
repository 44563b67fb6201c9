package shared

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	appVersion   = "1.0.0-SNAPSHOT"
	buildVersion = "_TAG_"
)

func init() {
	if buildVersion != ("_" + "TAG" + "_") {
		// not running in a development environment
		appVersion = buildVersion
	}
}

// GetAppVersion returns the version string the binary was built with.
func GetAppVersion() string {
	return appVersion
}

// ParseAppVersion parses a release tag such as "v1.2.0-rc1" with the
// leading "v" removed.
func ParseAppVersion(tag string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(tag), "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", tag, err)
	}
	return v, nil
}

// AppTitle is the window title, e.g. "File Pickers Sample 1.0.0".
// Unparseable build tags are shown as they are.
func AppTitle() string {
	v, err := ParseAppVersion(GetAppVersion())
	if err != nil {
		return "File Pickers Sample " + GetAppVersion()
	}
	return "File Pickers Sample " + v.String()
}
