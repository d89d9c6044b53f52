package resources

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const DEFAULT_CONFIG = "tokenizer_config.json"

// TokenizerConfig is the JSON shape of a tokenizer configuration. Absent
// fields keep their defaults.
type TokenizerConfig struct {
	Strategy     *string `json:"strategy,omitempty"`
	Merges       *int    `json:"merges,omitempty"`
	MinFrequency *int    `json:"min_frequency,omitempty"`
	EndOfWord    *string `json:"end_of_word,omitempty"`
	LowerCase    *bool   `json:"lower_case,omitempty"`
	StartToken   *string `json:"start_token,omitempty"`
	EndToken     *string `json:"end_token,omitempty"`
	IdBase       *uint32 `json:"id_base,omitempty"`
}

// ParseConfig
// Unmarshals a TokenizerConfig from JSON.
func ParseConfig(data []byte) (*TokenizerConfig, error) {
	var config TokenizerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.New(fmt.Sprintf(
			"error unmarshalling tokenizer config: %s", err))
	}
	return &config, nil
}

// LoadConfig
// Reads the TokenizerConfig at `path`, or the embedded default config when
// `path` is empty.
func LoadConfig(path string) (*TokenizerConfig, error) {
	if path == "" {
		data := GetEmbeddedResource(DEFAULT_CONFIG)
		if data == nil {
			return nil, fmt.Errorf("embedded `%s` missing", DEFAULT_CONFIG)
		}
		return ParseConfig(*data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config `%s`: %w", path, err)
	}
	return ParseConfig(data)
}
