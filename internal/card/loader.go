package card

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a deck.
// Search order: customPath -> ~/.keepsake/deck.yaml -> ./deck.yaml -> embedded default
func Load(customPath string) (Deck, error) {
	var deck Deck

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return deck, fmt.Errorf("failed to read deck %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &deck); err != nil {
			return deck, fmt.Errorf("failed to parse deck %s: %w", customPath, err)
		}
		if err := deck.Validate(); err != nil {
			return deck, err
		}
		return deck, nil
	}

	// Try user deck directory
	if userPath := userDeckPath("deck.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &deck); err == nil && deck.Validate() == nil {
				return deck, nil
			}
		}
	}

	// Try local deck file
	if data, err := os.ReadFile("deck.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &deck); err == nil && deck.Validate() == nil {
			return deck, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDeckYAML, &deck); err != nil {
		return deck, fmt.Errorf("failed to parse embedded default deck: %w", err)
	}
	return deck, nil
}

// userDeckPath returns the path to the user deck file, or empty if home is
// unavailable.
func userDeckPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keepsake", filename)
}
