package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIconsEmbedded(t *testing.T) {
	for _, name := range []string{IconIdle, IconRunning, IconLocked} {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		require.Equal(t, name, resource.Name())
		require.Contains(t, string(resource.Content()), "<svg")
	}

	again, err := Icon(IconIdle)
	require.NoError(t, err)
	require.Same(t, MustIcon(IconIdle), again)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("missing.svg")
	require.Error(t, err)
	require.Panics(t, func() { MustIcon("missing.svg") })
}
