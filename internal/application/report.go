package application

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/entry"
	"github.com/projetvet/projetvet-go/internal/fieldtype"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
	"github.com/projetvet/projetvet-go/pkg/i18n"
)

// Well-known idnumbers the progress rollups are built on.
const (
	FieldFinalECTS    = "final_ects"
	FieldRank         = "rang"
	FormSetFaceToFace = "facetoface"
)

// ReportService derives list views and numeric rollups from stored field
// values without re-specifying the schema.
type ReportService struct {
	Repos  *repository.Repos
	Schema *SchemaService
	Files  FileLister
}

func NewReportService(repos *repository.Repos, schemaSvc *SchemaService) *ReportService {
	return &ReportService{Repos: repos, Schema: schemaSvc}
}

// GetEntryList projects entries onto the fields marked for list views
// (listorder > 0, ascending), with a status label and formatted
// modification time per row. Entries come newest-modified first.
func (s *ReportService) GetEntryList(projectID, studentID uint, formset string, parentEntryID uint, locale string) (entry.EntryList, error) {
	cats, err := s.Schema.GetStructure(formset, locale)
	if err != nil {
		return entry.EntryList{}, err
	}
	if len(cats) == 0 {
		return entry.EntryList{Entries: []entry.ListRow{}, ListFields: []entry.ListField{}}, nil
	}

	fs, err := s.Repos.Schema.GetFormSetByIDNumber(formset)
	if err != nil {
		return entry.EntryList{}, err
	}

	type listRef struct {
		ref   fieldRef
		order int
	}
	var refs []listRef
	for _, cat := range cats {
		for _, f := range cat.Fields {
			if f.ListOrder > 0 {
				refs = append(refs, listRef{ref: fieldRef{field: f, cat: cat}, order: f.ListOrder})
			}
		}
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].order < refs[j].order })

	listFields := make([]entry.ListField, 0, len(refs))
	for _, lr := range refs {
		listFields = append(listFields, entry.ListField{
			IDNumber:  lr.ref.field.IDNumber,
			Name:      lr.ref.field.Name,
			Type:      lr.ref.field.Type,
			ListOrder: lr.order,
		})
	}

	entries, err := s.Repos.Entry.ListEntries(projectID, studentID, fs.ID, parentEntryID)
	if err != nil {
		return entry.EntryList{}, err
	}

	loc := i18n.Get(locale)
	res := fieldtype.Resolvers{LookupName: s.Schema.LookupResolver()}
	if s.Files != nil {
		res.ListFiles = s.Files.ListFilenames
	}

	rows := make([]entry.ListRow, 0, len(entries))
	for _, e := range entries {
		values, err := s.Repos.Entry.ListValues(e.ID)
		if err != nil {
			return entry.EntryList{}, err
		}
		byField := make(map[uint]entry.FieldValue, len(values))
		for _, v := range values {
			byField[v.FieldID] = v
		}

		row := entry.ListRow{
			ID:          e.ID,
			EntryStatus: e.EntryStatus,
			Values:      make(map[string]string, len(refs)),
		}
		row.TimeModified = loc.FormatTime(e.TimeModified)
		row.StatusLabel, err = s.Schema.StatusMessage(e.EntryStatus, formset, locale)
		if err != nil {
			return entry.EntryList{}, err
		}

		for _, lr := range refs {
			f := lr.ref.field
			fv, ok := byField[f.ID]
			if !ok {
				row.Values[f.IDNumber] = ""
				continue
			}
			ft := fieldtype.Type(f.Type)
			cfg := fieldtype.ParseConfig(ft, f.ConfigData)
			row.Values[f.IDNumber] = fieldtype.DisplayValue(ft, f.ID, storedValue(ft, fv), cfg, loc, res)
		}
		rows = append(rows, row)
	}

	return entry.EntryList{Entries: rows, ListFields: listFields}, nil
}

// TotalCredits sums the final_ects value over a student's entries.
func (s *ReportService) TotalCredits(projectID, studentID uint) (int64, error) {
	f, err := s.Repos.Schema.GetFieldByIDNumber(FieldFinalECTS)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("rollup field not found", FieldFinalECTS)
		}
		return 0, err
	}
	return s.Repos.Entry.SumIntValues(f.ID, projectID, studentID)
}

// CreditsByRank sums final_ects over entries whose rang field holds one
// of the given ranks.
func (s *ReportService) CreditsByRank(projectID, studentID uint, ranks ...int64) (int64, error) {
	if len(ranks) == 0 {
		return s.TotalCredits(projectID, studentID)
	}
	ects, err := s.Repos.Schema.GetFieldByIDNumber(FieldFinalECTS)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("rollup field not found", FieldFinalECTS)
		}
		return 0, err
	}
	rank, err := s.Repos.Schema.GetFieldByIDNumber(FieldRank)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("rollup field not found", FieldRank)
		}
		return 0, err
	}
	return s.Repos.Entry.SumIntValuesFiltered(ects.ID, projectID, studentID, rank.ID, ranks)
}

// InterviewCount counts a student's face-to-face entries.
func (s *ReportService) InterviewCount(projectID, studentID uint) (int64, error) {
	fs, err := s.Repos.Schema.GetFormSetByIDNumber(FormSetFaceToFace)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("form set not found", FormSetFaceToFace)
		}
		return 0, err
	}
	return s.Repos.Entry.CountEntries(fs.ID, projectID, studentID)
}
