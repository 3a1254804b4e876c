package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/config"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidateRejectsBadPrefix(t *testing.T) {
	p := config.Default()
	p.AttributesPrefix = "3bad"
	require.ErrorIs(t, p.Validate(), config.ErrInvalidPrefix)
}

func TestAsMapCoversFlagFields(t *testing.T) {
	m := config.Default().AsMap()
	for _, key := range []string{
		"numberTolerance", "circleSlices", "crsEpsg", "gmlIdPrefix",
		"mappingBackwardsCompatibility", "generateRandomGeometryIds",
	} {
		_, ok := m[key]
		require.Truef(t, ok, "expected key %q in AsMap()", key)
	}
}

func TestFromGetoptOverridesDefaults(t *testing.T) {
	p, err := config.FromGetopt([]string{
		"--number-tolerance", "1e-5",
		"--circle-slices", "16",
		"--concurrent-processing",
		"--gml-id-prefix", "gid_",
	})
	require.NoError(t, err)
	require.InDelta(t, 1e-5, p.NumberTolerance, 1e-12)
	require.Equal(t, 16, p.CircleSlices)
	require.True(t, p.ConcurrentProcessing)
	require.Equal(t, "gid_", p.GmlIDPrefix)

	require.Equal(t, config.Default().DiscretizationStepSize, p.DiscretizationStepSize)
}

func TestFromGetoptRejectsInvalidPrefix(t *testing.T) {
	_, err := config.FromGetopt([]string{"--attributes-prefix", "3bad"})
	require.ErrorIs(t, err, config.ErrInvalidPrefix)
}

func TestFromGetoptRejectsUnknownFlag(t *testing.T) {
	_, err := config.FromGetopt([]string{"--not-a-real-flag"})
	require.Error(t, err)
}
