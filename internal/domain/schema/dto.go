package schema

// ImportDocument is the admin import format. Sort orders are assigned from
// array positions; categories and fields are upserted by idnumber.
type ImportDocument struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Categories  []ImportCategory `json:"categories" yaml:"categories" binding:"required"`
}

type ImportCategory struct {
	IDNumber    string        `json:"idnumber" yaml:"idnumber" binding:"required"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Capability  string        `json:"capability" yaml:"capability"`
	EntryStatus int           `json:"entrystatus" yaml:"entrystatus"`
	StatusMsg   string        `json:"statusmsg" yaml:"statusmsg"`
	Fields      []ImportField `json:"fields" yaml:"fields"`
}

type ImportField struct {
	IDNumber    string       `json:"idnumber" yaml:"idnumber" binding:"required"`
	Name        string       `json:"name" yaml:"name"`
	Type        string       `json:"type" yaml:"type" binding:"required"`
	Description string       `json:"description" yaml:"description"`
	ConfigData  string       `json:"configdata" yaml:"configdata"`
	Capability  string       `json:"capability" yaml:"capability"`
	EntryStatus int          `json:"entrystatus" yaml:"entrystatus"`
	ListOrder   int          `json:"listorder" yaml:"listorder"`
	Items       []ImportItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// ImportItem seeds the grouped option list of a tag field.
type ImportItem struct {
	UniqueID string `json:"uniqueid" yaml:"uniqueid" binding:"required"`
	ItemType string `json:"itemtype" yaml:"itemtype"`
	Parent   string `json:"parent" yaml:"parent"`
	Name     string `json:"name" yaml:"name"`
}
