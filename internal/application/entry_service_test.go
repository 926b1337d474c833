package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/entry"
	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/internal/repository/mock"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
	"github.com/projetvet/projetvet-go/pkg/i18n"
)

// --------------------- Setup ---------------------

type stubAuthz struct {
	caps CapabilitySet
}

func (s stubAuthz) Capabilities(userID, projectID uint) (CapabilitySet, error) {
	return s.caps, nil
}

type captureBroadcaster struct {
	events []StatusEvent
}

func (b *captureBroadcaster) BroadcastStatusChange(ev StatusEvent) {
	b.events = append(b.events, ev)
}

func setupEntryServiceMocks(t *testing.T, caps CapabilitySet) (*EntryService, *mock.MockSchemaRepo, *mock.MockEntryRepo, *mock.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSchema := mock.NewMockSchemaRepo(ctrl)
	mockEntry := mock.NewMockEntryRepo(ctrl)
	mockNotif := mock.NewMockNotificationRepo(ctrl)
	repos := &repository.Repos{
		Schema:       mockSchema,
		Entry:        mockEntry,
		Notification: mockNotif,
	}
	svc := NewEntryService(repos, NewSchemaService(repos), stubAuthz{caps: caps})
	return svc, mockSchema, mockEntry, mockNotif
}

// activityStructure is activityCategories with a handful of fields hung
// off each category.
func activityStructure() []schema.Category {
	cats := activityCategories()
	cats[0].Fields = []schema.Field{
		{ID: 1, CategoryID: 1, IDNumber: "title", Type: "text"},
		{ID: 2, CategoryID: 1, IDNumber: "hours", Type: "number"},
	}
	cats[1].Fields = []schema.Field{
		{ID: 3, CategoryID: 2, IDNumber: "tutor_comment", Type: "textarea"},
	}
	cats[2].Fields = []schema.Field{
		{ID: 4, CategoryID: 3, IDNumber: "report_text", Type: "textarea"},
	}
	return cats
}

func seedStructure(svc *EntryService, formset string, cats []schema.Category) {
	svc.Schema.cache.Set(formset, i18n.DefaultCode, cats)
}

// --------------------- CreateEntry ---------------------

func TestCreateEntry_Success(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())
	seedStructure(svc, "activities", activityStructure())

	mockSchema.EXPECT().GetFormSetByIDNumber("activities").Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
	mockEntry.EXPECT().CreateEntry(gomock.Any()).DoAndReturn(func(e *entry.Entry) error {
		assert.Equal(t, uint(10), e.FormSetID)
		assert.Equal(t, uint(7), e.StudentID)
		assert.Equal(t, 0, e.EntryStatus)
		e.ID = 42
		return nil
	})

	var stored []entry.FieldValue
	mockEntry.EXPECT().UpsertValue(gomock.Any()).DoAndReturn(func(fv *entry.FieldValue) error {
		stored = append(stored, *fv)
		return nil
	}).Times(2)

	id, err := svc.CreateEntry(7, entry.CreateEntryDTO{
		FormSet:   "activities",
		ProjectID: 3,
		Fields:    map[string]any{"title": "Surgery rotation", "hours": 6},
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// Values arrive in idnumber order, each in its type's storage column.
	assert.Len(t, stored, 2)
	assert.Equal(t, uint(2), stored[0].FieldID)
	assert.Equal(t, int64(6), *stored[0].IntValue)
	assert.Equal(t, uint(1), stored[1].FieldID)
	assert.Equal(t, "Surgery rotation", *stored[1].CharValue)
}

func TestCreateEntry_UnknownFormSet(t *testing.T) {
	svc, mockSchema, _, _ := setupEntryServiceMocks(t, studentCaps())

	mockSchema.EXPECT().GetFormSetByIDNumber("nosuch").Return(schema.FormSet{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateEntry(7, entry.CreateEntryDTO{FormSet: "nosuch", ProjectID: 3})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateEntry_StatusOutOfRange(t *testing.T) {
	svc, mockSchema, _, _ := setupEntryServiceMocks(t, studentCaps())
	seedStructure(svc, "activities", activityStructure())

	mockSchema.EXPECT().GetFormSetByIDNumber("activities").Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	_, err := svc.CreateEntry(7, entry.CreateEntryDTO{FormSet: "activities", ProjectID: 3, Status: 9})
	assert.True(t, apperrors.IsValidation(err))
}

// --------------------- UpdateEntry ---------------------

func TestUpdateEntry_PlainProgression(t *testing.T) {
	svc, mockSchema, mockEntry, mockNotif := setupEntryServiceMocks(t, studentCaps())
	seedStructure(svc, "activities", activityStructure())
	events := &captureBroadcaster{}
	svc.Events = events

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 0}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
	mockEntry.EXPECT().UpsertValue(gomock.Any()).Return(nil)

	var saved entry.Entry
	mockEntry.EXPECT().UpdateEntry(gomock.Any()).DoAndReturn(func(e *entry.Entry) error {
		saved = *e
		return nil
	})

	var task notification.Task
	mockNotif.EXPECT().CreateTask(gomock.Any()).DoAndReturn(func(tk *notification.Task) error {
		task = *tk
		return nil
	})

	updated, err := svc.UpdateEntry(7, 42, entry.UpdateEntryDTO{
		Fields: map[string]any{"title": "Surgery rotation, week 2"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.EntryStatus)
	assert.Equal(t, 1, saved.EntryStatus)
	assert.Equal(t, uint(7), saved.UserModified)

	// Stage 1 is the tutor's approve category, so the tutor gets pinged.
	assert.Equal(t, notification.RecipientTutor, task.RecipientRole)
	assert.Equal(t, 0, task.OldStatus)
	assert.Equal(t, 1, task.NewStatus)
	assert.NotEmpty(t, task.TaskID)

	assert.Len(t, events.events, 1)
	assert.Equal(t, "Waiting for report", events.events[0].StatusLabel)
}

func TestUpdateEntry_FieldNotEditableAtStage(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())
	seedStructure(svc, "activities", activityStructure())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 0}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	// Students cannot touch the tutor's validation category: the whole
	// update is refused and nothing is written.
	_, err := svc.UpdateEntry(7, 42, entry.UpdateEntryDTO{
		Fields: map[string]any{"title": "ok", "tutor_comment": "sneaky"},
	})
	assert.True(t, apperrors.IsPermissionDenied(err))
}

func TestUpdateEntry_UnknownField(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())
	seedStructure(svc, "activities", activityStructure())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 0}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	_, err := svc.UpdateEntry(7, 42, entry.UpdateEntryDTO{
		Fields: map[string]any{"no_such_field": "x"},
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateEntry_ExplicitTargetMovesBackwards(t *testing.T) {
	svc, mockSchema, mockEntry, mockNotif := setupEntryServiceMocks(t, managerCaps())
	seedStructure(svc, "activities", activityStructure())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 3}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	var saved entry.Entry
	mockEntry.EXPECT().UpdateEntry(gomock.Any()).DoAndReturn(func(e *entry.Entry) error {
		saved = *e
		return nil
	})

	var task notification.Task
	mockNotif.EXPECT().CreateTask(gomock.Any()).DoAndReturn(func(tk *notification.Task) error {
		task = *tk
		return nil
	})

	target := 0
	updated, err := svc.UpdateEntry(9, 42, entry.UpdateEntryDTO{Status: &target})
	assert.NoError(t, err)
	assert.Equal(t, 0, updated.EntryStatus)
	assert.Equal(t, 0, saved.EntryStatus)

	// Back at stage 0 the ball is in the student's court again.
	assert.Equal(t, notification.RecipientStudent, task.RecipientRole)
	assert.Equal(t, 3, task.OldStatus)
	assert.Equal(t, 0, task.NewStatus)
}

func TestUpdateEntry_ExplicitTargetOutOfRange(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, managerCaps())
	seedStructure(svc, "activities", activityStructure())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 1}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	target := 9
	_, err := svc.UpdateEntry(9, 42, entry.UpdateEntryDTO{Status: &target})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateEntry_ReachingTerminalNotifiesNobody(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, tutorCaps())
	seedStructure(svc, "activities", activityStructure())
	events := &captureBroadcaster{}
	svc.Events = events

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 3}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
	mockEntry.EXPECT().UpsertValue(gomock.Any()).Return(nil)
	mockEntry.EXPECT().UpdateEntry(gomock.Any()).Return(nil)

	// No CreateTask expectation: the terminal stage has no next actor.
	updated, err := svc.UpdateEntry(9, 42, entry.UpdateEntryDTO{
		Fields: map[string]any{"tutor_comment": "well done"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.EntryStatus)

	assert.Len(t, events.events, 1)
	assert.Equal(t, "Approved", events.events[0].StatusLabel)
}

func TestUpdateEntry_TerminalEntryStaysPut(t *testing.T) {
	svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, tutorCaps())
	seedStructure(svc, "activities", activityStructure())
	events := &captureBroadcaster{}
	svc.Events = events

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 4}, nil)
	mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
	mockEntry.EXPECT().UpsertValue(gomock.Any()).Return(nil)
	mockEntry.EXPECT().UpdateEntry(gomock.Any()).Return(nil)

	updated, err := svc.UpdateEntry(9, 42, entry.UpdateEntryDTO{
		Fields: map[string]any{"tutor_comment": "postscript"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.EntryStatus)
	assert.Empty(t, events.events)
}

// --------------------- DeleteEntry ---------------------

func TestDeleteEntry_OwnerCascades(t *testing.T) {
	svc, _, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, ProjectID: 3, StudentID: 7}, nil)
	gomock.InOrder(
		mockEntry.EXPECT().DeleteValuesByEntry(uint(42)).Return(nil),
		mockEntry.EXPECT().DeleteEntry(uint(42)).Return(nil),
	)

	assert.NoError(t, svc.DeleteEntry(7, 42))
}

func TestDeleteEntry_StrangerDenied(t *testing.T) {
	svc, _, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, ProjectID: 3, StudentID: 7}, nil)

	err := svc.DeleteEntry(8, 42)
	assert.True(t, apperrors.IsPermissionDenied(err))
}

func TestDeleteEntry_ManagerMayDeleteAnyEntry(t *testing.T) {
	svc, _, mockEntry, _ := setupEntryServiceMocks(t, managerCaps())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, ProjectID: 3, StudentID: 7}, nil)
	gomock.InOrder(
		mockEntry.EXPECT().DeleteValuesByEntry(uint(42)).Return(nil),
		mockEntry.EXPECT().DeleteEntry(uint(42)).Return(nil),
	)

	assert.NoError(t, svc.DeleteEntry(9, 42))
}

func TestDeleteEntry_ValueDeletionFailureKeepsEntry(t *testing.T) {
	svc, _, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())

	mockEntry.EXPECT().GetEntryByID(uint(42)).Return(entry.Entry{ID: 42, ProjectID: 3, StudentID: 7}, nil)
	mockEntry.EXPECT().DeleteValuesByEntry(uint(42)).Return(errors.New("disk on fire"))

	// DeleteEntry is never expected: the entry must survive.
	err := svc.DeleteEntry(7, 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete entry values")
}

// --------------------- GetEntry ---------------------

func TestGetEntry_FiltersByVisibilityAndOwnership(t *testing.T) {
	cats := activityStructure()
	cats[1].Fields = append(cats[1].Fields, schema.Field{
		ID: 5, CategoryID: 2, IDNumber: "tutor_notes", Type: "text", Capability: "viewown",
	})

	title := "Surgery rotation"
	comment := "Looks solid"
	notes := "Needs supervision"
	values := []entry.FieldValue{
		{FieldID: 1, EntryID: 42, CharValue: &title},
		{FieldID: 3, EntryID: 42, TextValue: &comment},
		{FieldID: 5, EntryID: 42, CharValue: &notes},
	}
	e := entry.Entry{ID: 42, FormSetID: 10, ProjectID: 3, StudentID: 7, EntryStatus: 1}

	t.Run("owner sees private fields", func(t *testing.T) {
		svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, studentCaps())
		seedStructure(svc, "activities", cats)

		mockEntry.EXPECT().GetEntryByID(uint(42)).Return(e, nil)
		mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
		mockEntry.EXPECT().ListValues(uint(42)).Return(values, nil)

		detail, err := svc.GetEntry(7, 42, "en")
		assert.NoError(t, err)
		assert.Equal(t, "Waiting for report", detail.StatusLabel)
		assert.Equal(t, map[string]string{
			"title":         "Surgery rotation",
			"tutor_comment": "Looks solid",
			"tutor_notes":   "Needs supervision",
		}, detail.Values)
	})

	t.Run("others do not", func(t *testing.T) {
		svc, mockSchema, mockEntry, _ := setupEntryServiceMocks(t, tutorCaps())
		seedStructure(svc, "activities", cats)

		mockEntry.EXPECT().GetEntryByID(uint(42)).Return(e, nil)
		mockSchema.EXPECT().GetFormSetByID(uint(10)).Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)
		mockEntry.EXPECT().ListValues(uint(42)).Return(values, nil)

		detail, err := svc.GetEntry(8, 42, "en")
		assert.NoError(t, err)
		assert.NotContains(t, detail.Values, "tutor_notes")
		assert.Contains(t, detail.Values, "title")
	})
}
