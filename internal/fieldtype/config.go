package fieldtype

import "encoding/json"

// Config is the decoded form of a field's configdata blob. Each field type
// gets its own variant; malformed JSON decodes to the variant's zero value
// so a broken configuration never breaks the form.
type Config interface{ isConfig() }

type TextConfig struct {
	Required  bool
	MaxLength int
}

type TextareaConfig struct {
	Rows     int
	Required bool
}

type NumberConfig struct {
	Min      *int64
	Max      *int64
	Required bool
}

type SelectConfig struct {
	Options  map[string]string
	Required bool
}

type CheckboxConfig struct {
	Required bool
}

type AutocompleteConfig struct {
	Options  map[string]string
	Multiple bool
}

// TagConfig covers tagselect and tagconfirm; their option lists live in
// the lookup table, not in configdata.
type TagConfig struct {
	Required bool
}

type DateConfig struct {
	Required bool
}

type ButtonConfig struct {
	// TargetStatus is the explicit workflow stage an action button jumps to.
	TargetStatus *int
}

type FileConfig struct {
	MaxFiles int
}

type EmptyConfig struct{}

func (TextConfig) isConfig()         {}
func (TextareaConfig) isConfig()     {}
func (NumberConfig) isConfig()       {}
func (SelectConfig) isConfig()       {}
func (CheckboxConfig) isConfig()     {}
func (AutocompleteConfig) isConfig() {}
func (TagConfig) isConfig()          {}
func (DateConfig) isConfig()         {}
func (ButtonConfig) isConfig()       {}
func (FileConfig) isConfig()         {}
func (EmptyConfig) isConfig()        {}

// rawConfig is the superset of keys the importer may put in configdata.
type rawConfig struct {
	Options      map[string]string `json:"options"`
	Min          *int64            `json:"min"`
	Max          *int64            `json:"max"`
	Required     bool              `json:"required"`
	Rows         int               `json:"rows"`
	MaxLength    int               `json:"maxlength"`
	Multiple     bool              `json:"multiple"`
	TargetStatus *int              `json:"targetstatus"`
	MaxFiles     int               `json:"maxfiles"`
}

// ParseConfig decodes configdata once, at schema load time. Malformed
// input is treated as an empty document, never an error.
func ParseConfig(t Type, data []byte) Config {
	var raw rawConfig
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			raw = rawConfig{}
		}
	}

	switch t {
	case TypeText:
		return TextConfig{Required: raw.Required, MaxLength: raw.MaxLength}
	case TypeTextarea:
		return TextareaConfig{Rows: raw.Rows, Required: raw.Required}
	case TypeNumber:
		return NumberConfig{Min: raw.Min, Max: raw.Max, Required: raw.Required}
	case TypeSelect:
		return SelectConfig{Options: raw.Options, Required: raw.Required}
	case TypeCheckbox:
		return CheckboxConfig{Required: raw.Required}
	case TypeAutocomplete:
		return AutocompleteConfig{Options: raw.Options, Multiple: raw.Multiple}
	case TypeTagSelect, TypeTagConfirm:
		return TagConfig{Required: raw.Required}
	case TypeDate, TypeDatetime:
		return DateConfig{Required: raw.Required}
	case TypeButton:
		return ButtonConfig{TargetStatus: raw.TargetStatus}
	case TypeFileManager:
		return FileConfig{MaxFiles: raw.MaxFiles}
	default:
		return EmptyConfig{}
	}
}
