package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// CommonStyle is shared by every widget.
type CommonStyle struct {
	EmptyCellIcon string `yaml:"empty_cell_icon" toml:"empty_cell_icon"`
}

type RadioListStyle struct {
	ActiveIcon   string `yaml:"active_icon" toml:"active_icon"`
	InactiveIcon string `yaml:"inactive_icon" toml:"inactive_icon"`
}

type CheckboxListStyle struct {
	ActiveIcon   string `yaml:"active_icon" toml:"active_icon"`
	InactiveIcon string `yaml:"inactive_icon" toml:"inactive_icon"`
}

type CalendarStyle struct {
	PreviousMonthIcon string     `yaml:"previous_month_icon" toml:"previous_month_icon"`
	NextMonthIcon     string     `yaml:"next_month_icon" toml:"next_month_icon"`
	PreviousYearIcon  string     `yaml:"previous_year_icon" toml:"previous_year_icon"`
	NextYearIcon      string     `yaml:"next_year_icon" toml:"next_year_icon"`
	DaysOfWeek        [7]string  `yaml:"days_of_the_week" toml:"days_of_the_week"`
	Months            [12]string `yaml:"months" toml:"months"`
}

// Styles groups the look of every widget kind. A single value is usually
// shared by the whole bot.
type Styles struct {
	Common       CommonStyle       `yaml:"common" toml:"common"`
	RadioList    RadioListStyle    `yaml:"radio_list" toml:"radio_list"`
	CheckboxList CheckboxListStyle `yaml:"checkbox_list" toml:"checkbox_list"`
	Calendar     CalendarStyle     `yaml:"calendar" toml:"calendar"`
}

func DefaultStyles() *Styles {
	return &Styles{
		Common: CommonStyle{EmptyCellIcon: "✖️"},
		RadioList: RadioListStyle{
			ActiveIcon:   "🟢",
			InactiveIcon: "",
		},
		CheckboxList: CheckboxListStyle{
			ActiveIcon:   "☑",
			InactiveIcon: "☐",
		},
		Calendar: CalendarStyle{
			PreviousMonthIcon: "◀️",
			NextMonthIcon:     "▶️",
			PreviousYearIcon:  "◀️",
			NextYearIcon:      "▶️",
			DaysOfWeek:        [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Months: [12]string{
				"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October", "November", "December",
			},
		},
	}
}

// LoadStyles reads style overrides from a YAML or TOML file on top of
// DefaultStyles. Keys missing from the file keep their default value.
func LoadStyles(path string) (*Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading styles: %w", err)
	}
	return ParseStyles(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseStyles decodes overrides in the given format ("yaml", "yml" or "toml").
func ParseStyles(data []byte, format string) (*Styles, error) {
	s := DefaultStyles()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("decoding yaml styles: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), s); err != nil {
			return nil, fmt.Errorf("decoding toml styles: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported styles format %q", format)
	}
	return s, nil
}

// label prefixes text with icon, leaving text alone when icon is empty.
func label(icon, text string) string {
	if icon == "" {
		return text
	}
	return icon + " " + text
}
