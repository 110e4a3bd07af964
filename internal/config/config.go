// Package config provides YAML-based game configuration loading for the
// Word Flood platform.
package config

// FloodConfig contains all tunable parameters for Word Flood.
type FloodConfig struct {
	Spawn      SpawnConfig      `yaml:"spawn"`
	Rules      RulesConfig      `yaml:"rules"`
	Letters    LettersConfig    `yaml:"letters"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// SpawnConfig defines how quickly letters appear on the board.
// Typed mode spawns faster to balance the wider letter access it grants.
type SpawnConfig struct {
	GridIntervalMS  int `yaml:"grid_interval_ms"`
	TypedIntervalMS int `yaml:"typed_interval_ms"`
}

// RulesConfig defines scoring and submission rules.
type RulesConfig struct {
	MinWordLength   int `yaml:"min_word_length"`
	PointsPerLetter int `yaml:"points_per_letter"`
}

// LettersConfig defines the weighted letter distribution.
// Keys are single uppercase letters, values are relative weights.
type LettersConfig struct {
	Weights map[string]int `yaml:"weights"`
}

// DictionaryConfig defines how words are validated.
// When Offline is true the embedded word list is used instead of the
// remote lookup endpoint.
type DictionaryConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMS int    `yaml:"timeout_ms"`
	Offline   bool   `yaml:"offline"`
}

// DefaultFloodConfig returns the default Word Flood configuration.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Spawn: SpawnConfig{
			GridIntervalMS:  1250,
			TypedIntervalMS: 800,
		},
		Rules: RulesConfig{
			MinWordLength:   3,
			PointsPerLetter: 10,
		},
		Letters: LettersConfig{
			Weights: DefaultLetterWeights(),
		},
		Dictionary: DictionaryConfig{
			Endpoint:  "https://api.dictionaryapi.dev/api/v2/entries/en/",
			TimeoutMS: 4000,
			Offline:   false,
		},
	}
}

// DefaultLetterWeights returns the letter frequency table favoring common
// English letters. Rare letters (J, K, Q, X, Z) get the lowest weight.
func DefaultLetterWeights() map[string]int {
	return map[string]int{
		"A": 4, "B": 2, "C": 2, "D": 4, "E": 4, "F": 2, "G": 3,
		"H": 2, "I": 4, "J": 1, "K": 1, "L": 4, "M": 2, "N": 4,
		"O": 4, "P": 2, "Q": 1, "R": 4, "S": 8, "T": 4, "U": 4,
		"V": 2, "W": 2, "X": 1, "Y": 2, "Z": 1,
	}
}

// applyDefaults fills zero-valued fields so partial YAML files work.
func applyDefaults(cfg *FloodConfig) {
	def := DefaultFloodConfig()
	if cfg.Spawn.GridIntervalMS <= 0 {
		cfg.Spawn.GridIntervalMS = def.Spawn.GridIntervalMS
	}
	if cfg.Spawn.TypedIntervalMS <= 0 {
		cfg.Spawn.TypedIntervalMS = def.Spawn.TypedIntervalMS
	}
	if cfg.Rules.MinWordLength <= 0 {
		cfg.Rules.MinWordLength = def.Rules.MinWordLength
	}
	if cfg.Rules.PointsPerLetter <= 0 {
		cfg.Rules.PointsPerLetter = def.Rules.PointsPerLetter
	}
	if len(cfg.Letters.Weights) == 0 {
		cfg.Letters.Weights = def.Letters.Weights
	}
	if cfg.Dictionary.Endpoint == "" {
		cfg.Dictionary.Endpoint = def.Dictionary.Endpoint
	}
	if cfg.Dictionary.TimeoutMS <= 0 {
		cfg.Dictionary.TimeoutMS = def.Dictionary.TimeoutMS
	}
}
