package application

import (
	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
)

// CapabilitySet is an actor's resolved capabilities within one project.
type CapabilitySet map[schema.Capability]bool

func (s CapabilitySet) Has(c schema.Capability) bool { return s[c] }

// MaxStatus is the highest lifecycle stage any category of the form set
// declares. MaxStatus+1 is the terminal "fully approved" stage.
func MaxStatus(cats []schema.Category) int {
	max := 0
	for _, c := range cats {
		if c.EntryStatus > max {
			max = c.EntryStatus
		}
	}
	return max
}

func TerminalStatus(cats []schema.Category) int {
	return MaxStatus(cats) + 1
}

// CanEditCategory decides whether an actor may edit a category while the
// entry sits at entryStatus.
//
// The approve branch deliberately ignores entryStatus: an approve-capable
// actor may edit approve-tagged categories at any stage. Product has been
// asked whether that is intended; until then the behavior stands.
func CanEditCategory(cat schema.Category, entryStatus int, caps CapabilitySet) bool {
	switch schema.ParseCapability(cat.Capability) {
	case schema.CapApprove:
		return caps.Has(schema.CapApprove)
	case schema.CapSubmit:
		if caps.Has(schema.CapSubmit) && cat.EntryStatus == entryStatus {
			return true
		}
		if caps.Has(schema.CapApprove) && cat.EntryStatus < entryStatus {
			return true
		}
		return false
	case schema.CapUnlock:
		return caps.Has(schema.CapUnlock)
	case schema.CapEdit, schema.CapView, schema.CapViewOwn:
		return caps.Has(schema.ParseCapability(cat.Capability))
	default:
		// No capability tag, nothing to match against.
		return false
	}
}

// CanViewField hides viewown-tagged fields from everyone but the owning
// student; any other tag is visible.
func CanViewField(f schema.Field, ownerID, actorID uint, caps CapabilitySet) bool {
	switch schema.ParseCapability(f.Capability) {
	case schema.CapNone:
		return true
	case schema.CapViewOwn:
		return caps.Has(schema.CapViewOwn) && actorID == ownerID
	default:
		return true
	}
}

// VisibleCategories drops categories whose stage the entry has not reached
// yet. Visibility precedes editability.
func VisibleCategories(cats []schema.Category, entryStatus int) []schema.Category {
	visible := make([]schema.Category, 0, len(cats))
	for _, c := range cats {
		if c.EntryStatus <= entryStatus {
			visible = append(visible, c)
		}
	}
	return visible
}

// NextRecipient names who must act at newStatus: the first category at
// that stage decides. Approve and unlock stages belong to the tutor,
// submit stages to the student. Terminal stages notify nobody.
func NextRecipient(cats []schema.Category, newStatus int) string {
	if newStatus > MaxStatus(cats) {
		return ""
	}
	for _, c := range cats {
		if c.EntryStatus != newStatus {
			continue
		}
		switch schema.ParseCapability(c.Capability) {
		case schema.CapApprove, schema.CapUnlock:
			return notification.RecipientTutor
		case schema.CapSubmit:
			return notification.RecipientStudent
		}
	}
	return ""
}
