package levels

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: gauntlet
//	name: Gauntlet
//	finish_delay: 1.5
//	legend:
//	  "*": fire_rain
//	plan:
//	  - "@   h    o   "
//	  - "xxxxxxxxxxxxx"
type YAMLLevel struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	FinishDelay float64           `yaml:"finish_delay,omitempty"`
	Legend      map[string]string `yaml:"legend,omitempty"`
	Plan        []string          `yaml:"plan"`
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses and validates a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Plan:        yl.Plan,
		FinishDelay: yl.FinishDelay,
		Metadata:    yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if len(yl.Legend) > 0 {
		level.Legend = make(map[rune]string, len(yl.Legend))
		for symbol, actor := range yl.Legend {
			if utf8.RuneCountInString(symbol) != 1 {
				return Level{}, fmt.Errorf("%w: legend symbol %q must be a single character", ErrInvalidLevel, symbol)
			}
			r, _ := utf8.DecodeRuneInString(symbol)
			level.Legend[r] = actor
		}
	}

	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
