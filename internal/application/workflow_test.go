package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
)

// --------------------- Fixtures ---------------------

// activityCategories mirrors a typical training-log form set: the student
// describes the activity, the tutor validates it, the student writes the
// report, the tutor signs off.
func activityCategories() []schema.Category {
	return []schema.Category{
		{IDNumber: "description", Capability: "submit", EntryStatus: 0, StatusMsg: "Waiting for tutor validation"},
		{IDNumber: "validation", Capability: "approve", EntryStatus: 1, StatusMsg: "Waiting for report"},
		{IDNumber: "report", Capability: "submit", EntryStatus: 2, StatusMsg: "Waiting for final approval"},
		{IDNumber: "signoff", Capability: "approve", EntryStatus: 3, StatusMsg: "Awaiting signature"},
	}
}

func studentCaps() CapabilitySet {
	return CapabilitySet{schema.CapSubmit: true, schema.CapView: true, schema.CapViewOwn: true}
}

func tutorCaps() CapabilitySet {
	return CapabilitySet{schema.CapApprove: true, schema.CapView: true}
}

func managerCaps() CapabilitySet {
	return CapabilitySet{schema.CapApprove: true, schema.CapUnlock: true, schema.CapEdit: true, schema.CapView: true}
}

// --------------------- MaxStatus ---------------------

func TestMaxStatus(t *testing.T) {
	cats := activityCategories()
	assert.Equal(t, 3, MaxStatus(cats))
	assert.Equal(t, 4, TerminalStatus(cats))
	assert.Equal(t, 0, MaxStatus(nil))
	assert.Equal(t, 1, TerminalStatus(nil))
}

// --------------------- CanEditCategory ---------------------

func TestCanEditCategory_SubmitRequiresMatchingStage(t *testing.T) {
	cats := activityCategories()
	description := cats[0]
	report := cats[2]

	// Student at stage 0 may edit the description but not the report yet.
	assert.True(t, CanEditCategory(description, 0, studentCaps()))
	assert.False(t, CanEditCategory(report, 0, studentCaps()))

	// Once past stage 0, the description is frozen for the student.
	assert.False(t, CanEditCategory(description, 1, studentCaps()))
	assert.True(t, CanEditCategory(report, 2, studentCaps()))
	assert.False(t, CanEditCategory(report, 3, studentCaps()))
}

func TestCanEditCategory_ApproverCorrectsPastSubmitStages(t *testing.T) {
	cats := activityCategories()
	description := cats[0]

	// The tutor may fix a submit category the entry has moved past,
	// but not one still at or ahead of the current stage.
	assert.False(t, CanEditCategory(description, 0, tutorCaps()))
	assert.True(t, CanEditCategory(description, 1, tutorCaps()))
	assert.True(t, CanEditCategory(description, 3, tutorCaps()))
}

func TestCanEditCategory_ApproveIgnoresStage(t *testing.T) {
	validation := activityCategories()[1]

	for status := 0; status <= 4; status++ {
		assert.True(t, CanEditCategory(validation, status, tutorCaps()), "status %d", status)
		assert.False(t, CanEditCategory(validation, status, studentCaps()), "status %d", status)
	}
}

func TestCanEditCategory_UnlockAndEdit(t *testing.T) {
	unlock := schema.Category{Capability: "unlock", EntryStatus: 1}
	edit := schema.Category{Capability: "edit", EntryStatus: 0}

	assert.True(t, CanEditCategory(unlock, 3, managerCaps()))
	assert.False(t, CanEditCategory(unlock, 3, tutorCaps()))
	assert.True(t, CanEditCategory(edit, 2, managerCaps()))
	assert.False(t, CanEditCategory(edit, 2, studentCaps()))
}

func TestCanEditCategory_UntaggedNeverEditable(t *testing.T) {
	plain := schema.Category{Capability: "", EntryStatus: 0}
	bogus := schema.Category{Capability: "superpower", EntryStatus: 0}

	assert.False(t, CanEditCategory(plain, 0, managerCaps()))
	assert.False(t, CanEditCategory(bogus, 0, managerCaps()))
}

// --------------------- Visibility ---------------------

func TestVisibleCategories(t *testing.T) {
	cats := activityCategories()

	assert.Len(t, VisibleCategories(cats, 0), 1)
	assert.Len(t, VisibleCategories(cats, 2), 3)
	assert.Len(t, VisibleCategories(cats, 4), 4)
	assert.Empty(t, VisibleCategories(nil, 4))
}

func TestCanViewField_ViewOwn(t *testing.T) {
	private := schema.Field{IDNumber: "tutor_notes", Capability: "viewown"}
	public := schema.Field{IDNumber: "title"}

	owner, other := uint(7), uint(8)

	assert.True(t, CanViewField(private, owner, owner, studentCaps()))
	assert.False(t, CanViewField(private, owner, other, studentCaps()))
	assert.False(t, CanViewField(private, owner, other, tutorCaps()))
	assert.True(t, CanViewField(public, owner, other, tutorCaps()))
}

// --------------------- NextRecipient ---------------------

func TestNextRecipient(t *testing.T) {
	cats := activityCategories()

	assert.Equal(t, notification.RecipientStudent, NextRecipient(cats, 0))
	assert.Equal(t, notification.RecipientTutor, NextRecipient(cats, 1))
	assert.Equal(t, notification.RecipientStudent, NextRecipient(cats, 2))
	assert.Equal(t, notification.RecipientTutor, NextRecipient(cats, 3))

	// The terminal stage has no category, so nobody is on the hook.
	assert.Equal(t, "", NextRecipient(cats, 4))
}

func TestNextRecipient_UnlockGoesToTutor(t *testing.T) {
	cats := []schema.Category{
		{Capability: "submit", EntryStatus: 0},
		{Capability: "unlock", EntryStatus: 1},
	}
	assert.Equal(t, notification.RecipientTutor, NextRecipient(cats, 1))
}
