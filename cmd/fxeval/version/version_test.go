package version

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionParsing(t *testing.T) {
	defer func(ma, mi, pa, co uint64) {
		majorVer, minorVer, patchVer, commitVer = ma, mi, pa, co
	}(majorVer, minorVer, patchVer, commitVer)

	require.NoError(t, parseVersions("v1.2.3", "abcdef0123"))
	require.Equal(t, uint64(1), majorVer)
	require.Equal(t, uint64(2), minorVer)
	require.Equal(t, uint64(3), patchVer)

	n, err := strconv.ParseUint("abcdef0123", 16, 64)
	require.NoError(t, err)
	require.Equal(t, n, commitVer)
	require.Equal(t, "v1.2.3-abcdef0123", String())

	require.Error(t, parseVersions("1.2", ""))
	require.Error(t, parseVersions("v1.2.3", "xyz"))
}

func TestDefaultVersion(t *testing.T) {
	require.Equal(t, "v0.1.0-0", String())
}
