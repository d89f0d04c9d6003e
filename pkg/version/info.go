package version

import (
	"strings"

	"github.com/blang/semver"
	"github.com/jenkins-x/jx-strutil/pkg/log"
	"github.com/pkg/errors"
)

// Build information. Populated at build-time via -ldflags.
var (
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
)

const (
	// VersionPrefix is stripped before parsing the version as semver
	VersionPrefix = "v"

	// TestVersion is used if no version was injected at build time, such as in go test
	TestVersion = "0.0.1-SNAPSHOT"

	// TestRevision is used if no revision was injected at build time
	TestRevision = "unknown"
)

// GetVersion gets the current version string
func GetVersion() string {
	if Version != "" {
		return Version
	}
	return TestVersion
}

// GetRevision returns the git revision the binary was built from
func GetRevision() string {
	if Revision != "" {
		return Revision
	}
	return TestRevision
}

// GetSemverVersion returns a semver.Version struct representing the current version
func GetSemverVersion() (semver.Version, error) {
	text := strings.TrimPrefix(GetVersion(), VersionPrefix)
	v, err := semver.Make(text)
	if err != nil {
		return v, errors.Wrapf(err, "failed to parse version %s", text)
	}
	return v, nil
}

// StringDefault returns the current version string or returns a dummy
// default value if there is an error
func StringDefault(defaultValue string) string {
	v, err := GetSemverVersion()
	if err == nil {
		return v.String()
	}
	log.Logger().Warnf("Warning failed to load version: %s", err)
	return defaultValue
}
