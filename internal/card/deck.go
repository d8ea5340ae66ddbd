// Package card provides YAML-based deck content loading for the keepsake
// platform. A deck is pure data: everything the scenes show - questions,
// timeline moments, reasons, messages - comes from here, not from code.
package card

import "fmt"

// Deck describes one keepsake card: a linear sequence of scenes plus the
// content each scene presents.
type Deck struct {
	Title     string     `yaml:"title"`
	Recipient string     `yaml:"recipient"`
	Scenes    []string   `yaml:"scenes"` // order; empty means DefaultOrder
	Survey    []Question `yaml:"survey"`
	Unveil    Unveil     `yaml:"unveil"`
	Timeline  []Moment   `yaml:"timeline"`
	Reasons   []Reason   `yaml:"reasons"`
	Quiz      Quiz       `yaml:"quiz"`
	Candle    Candle     `yaml:"candle"`
	Scratch   Scratch    `yaml:"scratch"`
	Finale    Finale     `yaml:"finale"`
}

// Question is a single-choice survey question.
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
}

// Unveil configures the reveal-animation scene.
type Unveil struct {
	Banner   string `yaml:"banner"`
	Subtitle string `yaml:"subtitle"`
}

// Moment is one timeline entry. Media paths are referenced, never parsed.
type Moment struct {
	Date    string   `yaml:"date"`
	Caption string   `yaml:"caption"`
	Media   []string `yaml:"media"`
}

// Reason is one reason-card, tagged with an icon variant.
type Reason struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"` // heart, star or cat
}

// Quiz configures the yes/no choice scene with the evasive "no" button.
type Quiz struct {
	Prompt string `yaml:"prompt"`
	Yes    string `yaml:"yes"`
	No     string `yaml:"no"`
}

// Candle configures the candle-blowing scene.
type Candle struct {
	Breaths int `yaml:"breaths"` // blows needed to extinguish the flame
}

// Scratch configures the scratch-to-reveal scene.
type Scratch struct {
	Message     string  `yaml:"message"`
	StampRadius int     `yaml:"stamp_radius"` // 0 means the platform default
	RevealOver  float64 `yaml:"reveal_over"`  // 0 means the standard 0.5
}

// Finale configures the closing slide.
type Finale struct {
	Message   string `yaml:"message"`
	Signature string `yaml:"signature"`
}

// DefaultOrder is the canonical scene sequence of a keepsake card.
var DefaultOrder = []string{
	"survey", "unveil", "timeline", "reasons", "quiz", "candle", "scratch", "finale",
}

// SceneOrder returns the deck's scene sequence, falling back to DefaultOrder
// when the deck does not specify one.
func (d *Deck) SceneOrder() []string {
	if len(d.Scenes) == 0 {
		return DefaultOrder
	}
	return d.Scenes
}

// Validate checks that the deck references only known scenes and that every
// listed scene has the content it needs.
func (d *Deck) Validate() error {
	known := make(map[string]bool, len(DefaultOrder))
	for _, id := range DefaultOrder {
		known[id] = true
	}

	for _, id := range d.SceneOrder() {
		if !known[id] {
			return fmt.Errorf("card: unknown scene %q", id)
		}
		switch id {
		case "survey":
			if len(d.Survey) == 0 {
				return fmt.Errorf("card: scene %q listed but no survey questions defined", id)
			}
			for i, q := range d.Survey {
				if len(q.Options) < 2 {
					return fmt.Errorf("card: survey question %d needs at least 2 options", i+1)
				}
			}
		case "timeline":
			if len(d.Timeline) == 0 {
				return fmt.Errorf("card: scene %q listed but no timeline moments defined", id)
			}
		case "reasons":
			if len(d.Reasons) == 0 {
				return fmt.Errorf("card: scene %q listed but no reasons defined", id)
			}
		case "scratch":
			if d.Scratch.Message == "" {
				return fmt.Errorf("card: scene %q listed but scratch message is empty", id)
			}
		}
	}
	return nil
}
