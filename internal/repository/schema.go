package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/projetvet/projetvet-go/internal/domain/schema"
)

type SchemaRepo interface {
	GetFormSetByIDNumber(idnumber string) (schema.FormSet, error)
	GetFormSetByID(id uint) (schema.FormSet, error)
	ListFormSets() ([]schema.FormSet, error)
	ListCategories(formsetID uint) ([]schema.Category, error)
	GetFieldByIDNumber(idnumber string) (schema.Field, error)
	ListLookupItems(fieldID uint) ([]schema.LookupItem, error)
	GetLookupName(fieldID uint, uniqueID string) (string, error)
	UpsertFormSet(fs *schema.FormSet) error
	UpsertCategory(c *schema.Category) error
	UpsertField(f *schema.Field) error
	ReplaceLookupItems(fieldID uint, items []schema.LookupItem) error
	WithTx(tx *gorm.DB) SchemaRepo
}

type DBSchemaRepo struct {
	db *gorm.DB
}

func NewSchemaRepo(db *gorm.DB) *DBSchemaRepo {
	return &DBSchemaRepo{db: db}
}

func (r *DBSchemaRepo) WithTx(tx *gorm.DB) SchemaRepo {
	return &DBSchemaRepo{db: tx}
}

func (r *DBSchemaRepo) GetFormSetByIDNumber(idnumber string) (schema.FormSet, error) {
	var fs schema.FormSet
	err := r.db.Where("idnumber = ?", idnumber).First(&fs).Error
	return fs, err
}

func (r *DBSchemaRepo) GetFormSetByID(id uint) (schema.FormSet, error) {
	var fs schema.FormSet
	err := r.db.First(&fs, id).Error
	return fs, err
}

func (r *DBSchemaRepo) ListFormSets() ([]schema.FormSet, error) {
	var sets []schema.FormSet
	err := r.db.Order("sortorder, id").Find(&sets).Error
	return sets, err
}

func (r *DBSchemaRepo) ListCategories(formsetID uint) ([]schema.Category, error) {
	var cats []schema.Category
	err := r.db.
		Where("formsetid = ?", formsetID).
		Order("sortorder, id").
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("sortorder, id")
		}).
		Find(&cats).Error
	return cats, err
}

func (r *DBSchemaRepo) GetFieldByIDNumber(idnumber string) (schema.Field, error) {
	var f schema.Field
	err := r.db.Where("idnumber = ?", idnumber).First(&f).Error
	return f, err
}

func (r *DBSchemaRepo) ListLookupItems(fieldID uint) ([]schema.LookupItem, error) {
	var items []schema.LookupItem
	err := r.db.Where("fieldid = ?", fieldID).Order("sortorder, id").Find(&items).Error
	return items, err
}

func (r *DBSchemaRepo) GetLookupName(fieldID uint, uniqueID string) (string, error) {
	var item schema.LookupItem
	err := r.db.Where("fieldid = ? AND uniqueid = ?", fieldID, uniqueID).First(&item).Error
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

func (r *DBSchemaRepo) UpsertFormSet(fs *schema.FormSet) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idnumber"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "sortorder"}),
	}).Create(fs).Error
	if err != nil {
		return err
	}

	// The conflict-update path does not fill the primary key.
	var saved schema.FormSet
	if err := r.db.Where("idnumber = ?", fs.IDNumber).First(&saved).Error; err != nil {
		return err
	}
	fs.ID = saved.ID
	return nil
}

func (r *DBSchemaRepo) UpsertCategory(c *schema.Category) error {
	err := r.db.Omit("Fields").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "formsetid"}, {Name: "idnumber"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "capability", "entrystatus", "statusmsg", "sortorder",
		}),
	}).Create(c).Error
	if err != nil {
		return err
	}

	var saved schema.Category
	if err := r.db.Where("formsetid = ? AND idnumber = ?", c.FormSetID, c.IDNumber).First(&saved).Error; err != nil {
		return err
	}
	c.ID = saved.ID
	return nil
}

func (r *DBSchemaRepo) UpsertField(f *schema.Field) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "idnumber"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"categoryid", "name", "type", "description", "configdata",
			"capability", "entrystatus", "listorder", "sortorder",
		}),
	}).Create(f).Error
	if err != nil {
		return err
	}

	var saved schema.Field
	if err := r.db.Where("idnumber = ?", f.IDNumber).First(&saved).Error; err != nil {
		return err
	}
	f.ID = saved.ID
	return nil
}

func (r *DBSchemaRepo) ReplaceLookupItems(fieldID uint, items []schema.LookupItem) error {
	if err := r.db.Where("fieldid = ?", fieldID).Delete(&schema.LookupItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}
