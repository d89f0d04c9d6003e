package version_test

import (
	"testing"

	"github.com/jenkins-x/jx-strutil/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionDefaultsToTestVersion(t *testing.T) {
	assert.Equal(t, version.TestVersion, version.GetVersion())
	assert.Equal(t, version.TestRevision, version.GetRevision())

	v, err := version.GetSemverVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Patch)
}

func TestStringDefaultFallsBackOnBadVersion(t *testing.T) {
	original := version.Version
	defer func() { version.Version = original }()

	version.Version = "v1.2.3"
	assert.Equal(t, "1.2.3", version.StringDefault("dummy"))

	version.Version = "not-a-version"
	assert.Equal(t, "dummy", version.StringDefault("dummy"))
}
