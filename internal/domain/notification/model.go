package notification

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

const (
	RecipientStudent = "student"
	RecipientTutor   = "tutor"
)

// Task is one queued "action required" notification, written when an
// entry changes workflow stage and drained by the background dispatcher.
// It doubles as the status-change audit trail.
type Task struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TaskID        string         `gorm:"column:taskid;size:36;uniqueIndex;not null" json:"taskid"`
	EntryID       uint           `gorm:"column:entryid;index;not null" json:"entryid"`
	ProjectID     uint           `gorm:"column:projectid;not null" json:"projectid"`
	RecipientRole string         `gorm:"column:recipientrole;size:20;not null" json:"recipientrole"`
	OldStatus     int            `gorm:"column:oldstatus" json:"oldstatus"`
	NewStatus     int            `gorm:"column:newstatus" json:"newstatus"`
	Payload       datatypes.JSON `gorm:"column:payload" json:"payload"`
	Status        string         `gorm:"size:20;default:'pending';index" json:"status"`
	TimeCreated   time.Time      `gorm:"column:timecreated;autoCreateTime" json:"timecreated"`
	TimeSent      *time.Time     `gorm:"column:timesent" json:"timesent,omitempty"`
}

func (Task) TableName() string { return "form_notify" }

// Payload is the JSON body of a task, enough to build the message even
// if the entry is gone by dispatch time.
type Payload struct {
	EntryID   uint   `json:"entryid"`
	StudentID uint   `json:"studentid"`
	FormSet   string `json:"formset"`
}
