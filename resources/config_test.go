package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Embedded(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	require.NotNil(t, config.Strategy)
	assert.Equal(t, "subword", *config.Strategy)
	require.NotNil(t, config.Merges)
	assert.Equal(t, 10, *config.Merges)
	require.NotNil(t, config.EndOfWord)
	assert.Equal(t, "</w>", *config.EndOfWord)
	require.NotNil(t, config.IdBase)
	assert.Equal(t, uint32(100), *config.IdBase)
}

func TestParseConfig_Partial(t *testing.T) {
	config, err := ParseConfig([]byte(`{"merges": 4}`))
	require.NoError(t, err)
	assert.Equal(t, 4, *config.Merges)
	assert.Nil(t, config.Strategy)
	assert.Nil(t, config.StartToken)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte(`{"merges": "four"}`))
	assert.Error(t, err)
}
