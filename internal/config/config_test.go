package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init(nil)

	assert.Equal(t, DefaultBaseURL, BaseURL())
	assert.Equal(t, "", ClientID())
	assert.Equal(t, "0.0.0.0", Host())
	assert.Equal(t, 8000, Port())
	assert.Equal(t, "/mcp", MCPEndpointPath())
	assert.Zero(t, RateLimit())

	timeout, err := Timeout()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, timeout)
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("UITDB_CLIENT_ID", "  abc-123 ")
	t.Setenv("UITDB_BASE_URL", "http://localhost:9999/")
	t.Setenv("UITDB_TIMEOUT", "3s")
	Init(nil)

	assert.Equal(t, "abc-123", ClientID())
	assert.Equal(t, "http://localhost:9999", BaseURL())
	timeout, err := Timeout()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)
}

func TestFlagsBindWithDashes(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	root := &cobra.Command{Use: "test"}
	root.PersistentFlags().String("uitdb-client-id", "", "")
	root.PersistentFlags().Int("port", 8000, "")
	require.NoError(t, root.PersistentFlags().Set("uitdb-client-id", "from-flag"))
	require.NoError(t, root.PersistentFlags().Set("port", "9090"))
	Init(root)

	assert.Equal(t, "from-flag", ClientID())
	assert.Equal(t, 9090, Port())
}

func TestTimeoutInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("UITDB_TIMEOUT", "soon")
	Init(nil)

	_, err := Timeout()
	assert.ErrorContains(t, err, KeyTimeout)
}
