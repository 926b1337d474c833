package application

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
	"github.com/projetvet/projetvet-go/pkg/i18n"
)

// SchemaService materializes the category/field tree of a form set and
// keeps per-(formset, locale) snapshots in the structure cache.
type SchemaService struct {
	Repos *repository.Repos
	cache *StructureCache
}

func NewSchemaService(repos *repository.Repos) *SchemaService {
	return &SchemaService{
		Repos: repos,
		cache: NewStructureCache(),
	}
}

// GetStructure returns the ordered categories (with ordered fields) of a
// form set. An unknown form set yields an empty list, not an error.
func (s *SchemaService) GetStructure(formset, locale string) ([]schema.Category, error) {
	if cats, ok := s.cache.Get(formset, locale); ok {
		return cats, nil
	}

	fs, err := s.Repos.Schema.GetFormSetByIDNumber(formset)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			empty := []schema.Category{}
			s.cache.Set(formset, locale, empty)
			return empty, nil
		}
		return nil, err
	}

	cats, err := s.Repos.Schema.ListCategories(fs.ID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(formset, locale, cats)
	return cats, nil
}

// ListFormSets returns every known form set, in sort order.
func (s *SchemaService) ListFormSets() ([]schema.FormSet, error) {
	return s.Repos.Schema.ListFormSets()
}

// StatusMessage maps an entry status to its human label. Each category
// stage carries its own label; the synthetic terminal stage (max+1) gets
// the localized approved label. Unmapped statuses render empty.
func (s *SchemaService) StatusMessage(status int, formset, locale string) (string, error) {
	cats, err := s.GetStructure(formset, locale)
	if err != nil {
		return "", err
	}
	if len(cats) == 0 {
		return "", nil
	}
	if status == TerminalStatus(cats) {
		return i18n.Get(locale).T("status_approved"), nil
	}
	for _, c := range cats {
		if c.EntryStatus == status {
			return c.StatusMsg, nil
		}
	}
	return "", nil
}

// Invalidate drops cached snapshots for one form set, every locale.
func (s *SchemaService) Invalidate(formset string) {
	s.cache.Invalidate(formset)
}

// Import upserts a form set's categories, fields and lookup items from an
// import document, assigning sort orders from array positions, then
// purges the structure cache. The whole document commits or nothing does.
func (s *SchemaService) Import(formset string, doc schema.ImportDocument) (int, int, error) {
	if formset == "" || len(doc.Categories) == 0 {
		return 0, 0, apperrors.Validation("import document has no categories", formset)
	}

	catCount, fieldCount := 0, 0
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		name := doc.Name
		if name == "" {
			name = formset
		}
		fs := schema.FormSet{IDNumber: formset, Name: name, Description: doc.Description}
		if err := tx.Schema.UpsertFormSet(&fs); err != nil {
			return err
		}

		for i, ic := range doc.Categories {
			cat := schema.Category{
				FormSetID:   fs.ID,
				IDNumber:    ic.IDNumber,
				Name:        ic.Name,
				Description: ic.Description,
				Capability:  ic.Capability,
				EntryStatus: ic.EntryStatus,
				StatusMsg:   ic.StatusMsg,
				SortOrder:   i,
			}
			if err := tx.Schema.UpsertCategory(&cat); err != nil {
				return fmt.Errorf("category %s: %w", ic.IDNumber, err)
			}
			catCount++

			for j, fld := range ic.Fields {
				cfg := fld.ConfigData
				if cfg == "" {
					cfg = "{}"
				}
				field := schema.Field{
					CategoryID:  cat.ID,
					IDNumber:    fld.IDNumber,
					Name:        fld.Name,
					Type:        fld.Type,
					Description: fld.Description,
					ConfigData:  datatypes.JSON([]byte(cfg)),
					Capability:  fld.Capability,
					EntryStatus: fld.EntryStatus,
					ListOrder:   fld.ListOrder,
					SortOrder:   j,
				}
				if err := tx.Schema.UpsertField(&field); err != nil {
					return fmt.Errorf("field %s: %w", fld.IDNumber, err)
				}
				fieldCount++

				if len(fld.Items) > 0 {
					items := make([]schema.LookupItem, 0, len(fld.Items))
					for k, it := range fld.Items {
						itemType := it.ItemType
						if itemType == "" {
							itemType = schema.LookupEntry
						}
						parent := it.Parent
						if parent == "" {
							parent = "0"
						}
						items = append(items, schema.LookupItem{
							FieldID:   field.ID,
							UniqueID:  it.UniqueID,
							ItemType:  itemType,
							Parent:    parent,
							Name:      it.Name,
							SortOrder: k,
						})
					}
					if err := tx.Schema.ReplaceLookupItems(field.ID, items); err != nil {
						return fmt.Errorf("items for field %s: %w", fld.IDNumber, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, 0, apperrors.Validation("duplicate idnumber in import document", pqErr.Detail)
		}
		return 0, 0, err
	}

	s.Invalidate(formset)
	return catCount, fieldCount, nil
}

// LookupResolver adapts the lookup table for display rendering. Missing
// ids resolve to empty names.
func (s *SchemaService) LookupResolver() func(fieldID uint, uniqueID string) string {
	return func(fieldID uint, uniqueID string) string {
		name, err := s.Repos.Schema.GetLookupName(fieldID, uniqueID)
		if err != nil {
			return ""
		}
		return name
	}
}
