package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	APIKey  string `env:"SAMPLE_API_KEY,required,notEmpty"`
	Model   string `env:"SAMPLE_MODEL"`
	Rate    int    `env:"SAMPLE_RATE"`
	Enabled bool   `env:"SAMPLE_ENABLED"`
	Skipped string
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sampleConfig{
		APIKey:  "secret",
		Rate:    180,
		Enabled: true,
		Skipped: "never written",
	}

	out, err := MarshalEnv(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "SAMPLE_API_KEY=secret\n")
	assert.Contains(t, out, "SAMPLE_RATE=180\n")
	assert.Contains(t, out, "SAMPLE_ENABLED=true\n")
	// Zero values and untagged fields are omitted.
	assert.NotContains(t, out, "SAMPLE_MODEL")
	assert.NotContains(t, out, "never written")
}

func TestMarshalEnvEmptyStruct(t *testing.T) {
	out, err := MarshalEnv(&sampleConfig{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
