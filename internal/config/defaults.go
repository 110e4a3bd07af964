package config

import (
	_ "embed"
)

//go:embed defaults/flood.yaml
var defaultFloodYAML []byte
