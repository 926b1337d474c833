package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/projetvet/projetvet-go/internal/domain/entry"
)

type EntryRepo interface {
	GetEntryByID(id uint) (entry.Entry, error)
	CreateEntry(e *entry.Entry) error
	UpdateEntry(e *entry.Entry) error
	DeleteEntry(id uint) error
	ListEntries(projectID, studentID, formsetID, parentEntryID uint) ([]entry.Entry, error)
	UpsertValue(v *entry.FieldValue) error
	ListValues(entryID uint) ([]entry.FieldValue, error)
	DeleteValuesByEntry(entryID uint) error
	CountValuesByEntry(entryID uint) (int64, error)
	SumIntValues(fieldID, projectID, studentID uint) (int64, error)
	SumIntValuesFiltered(fieldID, projectID, studentID, condFieldID uint, condValues []int64) (int64, error)
	CountEntries(formsetID, projectID, studentID uint) (int64, error)
	WithTx(tx *gorm.DB) EntryRepo
}

type DBEntryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) *DBEntryRepo {
	return &DBEntryRepo{db: db}
}

func (r *DBEntryRepo) WithTx(tx *gorm.DB) EntryRepo {
	return &DBEntryRepo{db: tx}
}

func (r *DBEntryRepo) GetEntryByID(id uint) (entry.Entry, error) {
	var e entry.Entry
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBEntryRepo) CreateEntry(e *entry.Entry) error {
	return r.db.Create(e).Error
}

func (r *DBEntryRepo) UpdateEntry(e *entry.Entry) error {
	return r.db.Save(e).Error
}

func (r *DBEntryRepo) DeleteEntry(id uint) error {
	return r.db.Delete(&entry.Entry{}, id).Error
}

func (r *DBEntryRepo) ListEntries(projectID, studentID, formsetID, parentEntryID uint) ([]entry.Entry, error) {
	var entries []entry.Entry
	q := r.db.Where("projectid = ? AND parententryid = ?", projectID, parentEntryID)
	if studentID != 0 {
		q = q.Where("studentid = ?", studentID)
	}
	if formsetID != 0 {
		q = q.Where("formsetid = ?", formsetID)
	}
	err := q.Order("timemodified DESC, id DESC").Find(&entries).Error
	return entries, err
}

func (r *DBEntryRepo) UpsertValue(v *entry.FieldValue) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fieldid"}, {Name: "entryid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"intvalue", "decvalue", "shortcharvalue", "charvalue", "textvalue",
		}),
	}).Create(v).Error
}

func (r *DBEntryRepo) ListValues(entryID uint) ([]entry.FieldValue, error) {
	var values []entry.FieldValue
	err := r.db.Where("entryid = ?", entryID).Find(&values).Error
	return values, err
}

func (r *DBEntryRepo) DeleteValuesByEntry(entryID uint) error {
	return r.db.Where("entryid = ?", entryID).Delete(&entry.FieldValue{}).Error
}

func (r *DBEntryRepo) CountValuesByEntry(entryID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entry.FieldValue{}).Where("entryid = ?", entryID).Count(&n).Error
	return n, err
}

// SumIntValues totals a field's integer value across a student's entries,
// used for credit rollups like final_ects.
func (r *DBEntryRepo) SumIntValues(fieldID, projectID, studentID uint) (int64, error) {
	var total *int64
	err := r.db.Table("form_data d").
		Select("SUM(d.intvalue)").
		Joins("JOIN form_entry e ON e.id = d.entryid").
		Where("d.fieldid = ? AND e.projectid = ? AND e.studentid = ?", fieldID, projectID, studentID).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// SumIntValuesFiltered additionally requires a second field of the same
// entry to hold one of condValues (e.g. rang = 1).
func (r *DBEntryRepo) SumIntValuesFiltered(fieldID, projectID, studentID, condFieldID uint, condValues []int64) (int64, error) {
	var total *int64
	err := r.db.Table("form_data d").
		Select("SUM(d.intvalue)").
		Joins("JOIN form_entry e ON e.id = d.entryid").
		Joins("JOIN form_data c ON c.entryid = d.entryid AND c.fieldid = ?", condFieldID).
		Where("d.fieldid = ? AND e.projectid = ? AND e.studentid = ?", fieldID, projectID, studentID).
		Where("c.intvalue IN ?", condValues).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *DBEntryRepo) CountEntries(formsetID, projectID, studentID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entry.Entry{}).
		Where("formsetid = ? AND projectid = ? AND studentid = ?", formsetID, projectID, studentID).
		Count(&n).Error
	return n, err
}
