package bpe_playground

import (
	"github.com/wbrown/bpe_playground/resources"
	"github.com/wbrown/bpe_playground/types"
)

// Settings is everything a caller needs to tokenize and number tokens.
type Settings struct {
	Strategy Strategy
	Options  Options
	IdBase   types.TokenId
}

func DefaultSettings() Settings {
	return Settings{
		Strategy: StrategySubword,
		Options:  DefaultOptions(),
		IdBase:   DEFAULT_ID_BASE,
	}
}

// SettingsFromConfig
// Overlays the fields present in `config` onto DefaultSettings.
func SettingsFromConfig(config *resources.TokenizerConfig) (Settings,
	error) {
	settings := DefaultSettings()
	if config == nil {
		return settings, nil
	}
	if config.Strategy != nil {
		strategy, err := ParseStrategy(*config.Strategy)
		if err != nil {
			return settings, err
		}
		settings.Strategy = strategy
	}
	if config.Merges != nil {
		settings.Options.Merges = *config.Merges
	}
	if config.MinFrequency != nil {
		settings.Options.MinFrequency = *config.MinFrequency
	}
	if config.EndOfWord != nil {
		settings.Options.EndOfWord = *config.EndOfWord
	}
	if config.LowerCase != nil {
		settings.Options.LowerCase = *config.LowerCase
	}
	if config.StartToken != nil {
		settings.Options.Specials.Start = *config.StartToken
	}
	if config.EndToken != nil {
		settings.Options.Specials.End = *config.EndToken
	}
	if config.IdBase != nil {
		settings.IdBase = types.TokenId(*config.IdBase)
	}
	return settings, nil
}

// LoadSettings
// Reads the config at `path` (the embedded default when empty) into
// Settings.
func LoadSettings(path string) (Settings, error) {
	config, err := resources.LoadConfig(path)
	if err != nil {
		return DefaultSettings(), err
	}
	return SettingsFromConfig(config)
}
