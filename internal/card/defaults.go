package card

import (
	_ "embed"
)

//go:embed defaults/deck.yaml
var defaultDeckYAML []byte
