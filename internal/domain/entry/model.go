package entry

import "time"

// Entry is one filled-in instance of a form set. EntryStatus is the sole
// workflow state; it starts at 0 and normally only moves forward.
type Entry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FormSetID     uint      `gorm:"column:formsetid;index;not null" json:"formsetid"`
	ProjectID     uint      `gorm:"column:projectid;index;not null" json:"projectid"`
	StudentID     uint      `gorm:"column:studentid;index;not null" json:"studentid"`
	ParentEntryID uint      `gorm:"column:parententryid;default:0" json:"parententryid"`
	EntryStatus   int       `gorm:"column:entrystatus;default:0" json:"entrystatus"`
	TimeCreated   time.Time `gorm:"column:timecreated;autoCreateTime" json:"timecreated"`
	TimeModified  time.Time `gorm:"column:timemodified;autoUpdateTime" json:"timemodified"`
	UserModified  uint      `gorm:"column:usermodified" json:"usermodified"`
}

func (Entry) TableName() string { return "form_entry" }

// FieldValue holds one stored value for an entry/field pair. Exactly one of
// the typed columns is meaningful; which one is decided by the field type's
// storage slot, never by inspecting the data.
type FieldValue struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	FieldID        uint     `gorm:"column:fieldid;uniqueIndex:uq_form_data_field_entry;not null" json:"fieldid"`
	EntryID        uint     `gorm:"column:entryid;uniqueIndex:uq_form_data_field_entry;index;not null" json:"entryid"`
	IntValue       *int64   `gorm:"column:intvalue" json:"intvalue,omitempty"`
	DecValue       *float64 `gorm:"column:decvalue" json:"decvalue,omitempty"`
	ShortCharValue *string  `gorm:"column:shortcharvalue;size:255" json:"shortcharvalue,omitempty"`
	CharValue      *string  `gorm:"column:charvalue;size:1333" json:"charvalue,omitempty"`
	TextValue      *string  `gorm:"column:textvalue;type:text" json:"textvalue,omitempty"`
}

func (FieldValue) TableName() string { return "form_data" }
