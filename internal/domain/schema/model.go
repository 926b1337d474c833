package schema

import (
	"gorm.io/datatypes"
)

// Capability is the closed set of authorization tags understood by the
// workflow. Category rows store the raw string; ParseCapability folds
// anything unknown into CapNone.
type Capability string

const (
	CapNone    Capability = ""
	CapSubmit  Capability = "submit"
	CapApprove Capability = "approve"
	CapUnlock  Capability = "unlock"
	CapEdit    Capability = "edit"
	CapView    Capability = "view"
	CapViewOwn Capability = "viewown"
)

func ParseCapability(s string) Capability {
	switch Capability(s) {
	case CapSubmit, CapApprove, CapUnlock, CapEdit, CapView, CapViewOwn:
		return Capability(s)
	default:
		return CapNone
	}
}

// FormSet is one complete form type (e.g. "activities", "facetoface").
// Rows are created by import tooling and read-mostly at runtime.
type FormSet struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	IDNumber    string `gorm:"column:idnumber;size:100;uniqueIndex;not null" json:"idnumber"`
	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"column:sortorder" json:"sortorder"`
}

func (FormSet) TableName() string { return "form_set" }

// Category groups fields and carries the capability plus lifecycle stage
// required to edit them.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FormSetID   uint   `gorm:"column:formsetid;uniqueIndex:uq_form_cat_idnumber;index;not null" json:"formsetid"`
	IDNumber    string `gorm:"column:idnumber;size:100;uniqueIndex:uq_form_cat_idnumber;not null" json:"idnumber"`
	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Capability  string `gorm:"size:50" json:"capability"`
	EntryStatus int    `gorm:"column:entrystatus" json:"entrystatus"`
	StatusMsg   string `gorm:"column:statusmsg;size:255" json:"statusmsg"`
	SortOrder   int    `gorm:"column:sortorder" json:"sortorder"`

	Fields []Field `gorm:"foreignKey:CategoryID" json:"fields"`
}

func (Category) TableName() string { return "form_cat" }

// Field is a single typed input definition. IDNumber is globally unique so
// reporting can locate fields like "final_ects" across form sets.
type Field struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"column:categoryid;index;not null" json:"categoryid"`
	IDNumber    string         `gorm:"column:idnumber;size:100;uniqueIndex;not null" json:"idnumber"`
	Name        string         `gorm:"size:255" json:"name"`
	Type        string         `gorm:"size:50;not null" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	ConfigData  datatypes.JSON `gorm:"column:configdata" json:"configdata"`
	Capability  string         `gorm:"size:50" json:"capability"`
	EntryStatus int            `gorm:"column:entrystatus" json:"entrystatus"`
	ListOrder   int            `gorm:"column:listorder" json:"listorder"`
	SortOrder   int            `gorm:"column:sortorder" json:"sortorder"`
}

func (Field) TableName() string { return "form_field" }

const (
	LookupHeading = "heading"
	LookupEntry   = "item"
)

// LookupItem is one row of a two-level grouped option list used by tag
// fields. Headings have Parent "0"; items point at a sibling heading.
type LookupItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FieldID   uint   `gorm:"column:fieldid;index;not null" json:"fieldid"`
	UniqueID  string `gorm:"column:uniqueid;size:100;not null" json:"uniqueid"`
	ItemType  string `gorm:"column:itemtype;size:20;not null" json:"itemtype"`
	Parent    string `gorm:"size:100;default:'0'" json:"parent"`
	Name      string `gorm:"size:255" json:"name"`
	SortOrder int    `gorm:"column:sortorder" json:"sortorder"`
}

func (LookupItem) TableName() string { return "field_data" }
