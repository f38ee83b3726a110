package coaching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupCoachingContainer(t)
	defer cleanup()

	client := coachsdk.NewSDKClient(baseURL)

	t.Run("livez reports ok", func(t *testing.T) {
		health, err := client.Livez(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz reports dependencies ok", func(t *testing.T) {
		health, err := client.Readyz(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
		require.Equal(t, "ok", health.Checks.Signer)
	})
}
