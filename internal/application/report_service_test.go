package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/entry"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/internal/repository/mock"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
)

// --------------------- Setup ---------------------

func setupReportServiceMocks(t *testing.T) (*ReportService, *mock.MockSchemaRepo, *mock.MockEntryRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSchema := mock.NewMockSchemaRepo(ctrl)
	mockEntry := mock.NewMockEntryRepo(ctrl)
	repos := &repository.Repos{Schema: mockSchema, Entry: mockEntry}
	svc := NewReportService(repos, NewSchemaService(repos))
	return svc, mockSchema, mockEntry
}

// --------------------- GetEntryList ---------------------

func TestGetEntryList(t *testing.T) {
	svc, mockSchema, mockEntry := setupReportServiceMocks(t)

	cats := activityCategories()
	cats[0].Fields = []schema.Field{
		{ID: 1, IDNumber: "title", Type: "text", Name: "Title", ListOrder: 2},
		{ID: 2, IDNumber: "hours", Type: "number", Name: "Hours"},
		{ID: 6, IDNumber: "activity_date", Type: "date", Name: "Date", ListOrder: 1},
	}
	cats[1].Fields = []schema.Field{
		{ID: 9, IDNumber: "final_ects", Type: "number", Name: "ECTS", ListOrder: 3},
	}
	svc.Schema.cache.Set("activities", "en", cats)

	mockSchema.EXPECT().GetFormSetByIDNumber("activities").Return(schema.FormSet{ID: 10, IDNumber: "activities"}, nil)

	modified := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)
	mockEntry.EXPECT().ListEntries(uint(3), uint(7), uint(10), uint(0)).Return([]entry.Entry{
		{ID: 2, EntryStatus: 1, TimeModified: modified},
		{ID: 1, EntryStatus: 0, TimeModified: modified.Add(-24 * time.Hour)},
	}, nil)

	title := "Surgery rotation"
	date := int64(1717200000)
	ects := int64(4)
	mockEntry.EXPECT().ListValues(uint(2)).Return([]entry.FieldValue{
		{FieldID: 1, EntryID: 2, CharValue: &title},
		{FieldID: 6, EntryID: 2, IntValue: &date},
		{FieldID: 9, EntryID: 2, IntValue: &ects},
	}, nil)
	mockEntry.EXPECT().ListValues(uint(1)).Return([]entry.FieldValue{
		{FieldID: 1, EntryID: 1, CharValue: &title},
	}, nil)

	list, err := svc.GetEntryList(3, 7, "activities", 0, "en")
	assert.NoError(t, err)

	// Columns are the listorder-tagged fields, ascending, across categories.
	assert.Equal(t, []string{"activity_date", "title", "final_ects"}, func() []string {
		var ids []string
		for _, f := range list.ListFields {
			ids = append(ids, f.IDNumber)
		}
		return ids
	}())

	assert.Len(t, list.Entries, 2)
	first := list.Entries[0]
	assert.Equal(t, uint(2), first.ID)
	assert.Equal(t, "Waiting for report", first.StatusLabel)
	assert.Equal(t, "3 June 2024, 14:30", first.TimeModified)
	assert.Equal(t, "1 June 2024", first.Values["activity_date"])
	assert.Equal(t, "Surgery rotation", first.Values["title"])
	assert.Equal(t, "4", first.Values["final_ects"])

	// Missing values render empty, not as a hole in the row.
	second := list.Entries[1]
	assert.Equal(t, "", second.Values["activity_date"])
	assert.Equal(t, "", second.Values["final_ects"])
}

func TestGetEntryList_UnknownFormSet(t *testing.T) {
	svc, mockSchema, _ := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFormSetByIDNumber("nosuch").Return(schema.FormSet{}, gorm.ErrRecordNotFound)

	list, err := svc.GetEntryList(3, 7, "nosuch", 0, "en")
	assert.NoError(t, err)
	assert.Empty(t, list.Entries)
	assert.Empty(t, list.ListFields)
}

// --------------------- Rollups ---------------------

func TestTotalCredits(t *testing.T) {
	svc, mockSchema, mockEntry := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFieldByIDNumber("final_ects").Return(schema.Field{ID: 9, IDNumber: "final_ects"}, nil)
	mockEntry.EXPECT().SumIntValues(uint(9), uint(3), uint(7)).Return(int64(12), nil)

	total, err := svc.TotalCredits(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
}

func TestTotalCredits_MissingRollupField(t *testing.T) {
	svc, mockSchema, _ := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFieldByIDNumber("final_ects").Return(schema.Field{}, gorm.ErrRecordNotFound)

	_, err := svc.TotalCredits(3, 7)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreditsByRank(t *testing.T) {
	svc, mockSchema, mockEntry := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFieldByIDNumber("final_ects").Return(schema.Field{ID: 9}, nil)
	mockSchema.EXPECT().GetFieldByIDNumber("rang").Return(schema.Field{ID: 11}, nil)
	mockEntry.EXPECT().SumIntValuesFiltered(uint(9), uint(3), uint(7), uint(11), []int64{1, 2}).Return(int64(8), nil)

	total, err := svc.CreditsByRank(3, 7, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(8), total)
}

func TestCreditsByRank_NoRanksFallsBackToTotal(t *testing.T) {
	svc, mockSchema, mockEntry := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFieldByIDNumber("final_ects").Return(schema.Field{ID: 9}, nil)
	mockEntry.EXPECT().SumIntValues(uint(9), uint(3), uint(7)).Return(int64(12), nil)

	total, err := svc.CreditsByRank(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
}

func TestInterviewCount(t *testing.T) {
	svc, mockSchema, mockEntry := setupReportServiceMocks(t)

	mockSchema.EXPECT().GetFormSetByIDNumber("facetoface").Return(schema.FormSet{ID: 12, IDNumber: "facetoface"}, nil)
	mockEntry.EXPECT().CountEntries(uint(12), uint(3), uint(7)).Return(int64(2), nil)

	count, err := svc.InterviewCount(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
