package application

import (
	"encoding/json"
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/projetvet/projetvet-go/internal/domain/entry"
	"github.com/projetvet/projetvet-go/internal/domain/notification"
	"github.com/projetvet/projetvet-go/internal/domain/schema"
	"github.com/projetvet/projetvet-go/internal/fieldtype"
	"github.com/projetvet/projetvet-go/internal/repository"
	"github.com/projetvet/projetvet-go/pkg/apperrors"
	"github.com/projetvet/projetvet-go/pkg/i18n"
)

// FileLister names files in a storage area, for filemanager display.
type FileLister interface {
	ListFilenames(areaID int64) []string
}

// StatusEvent is pushed to websocket subscribers on every stage change.
type StatusEvent struct {
	EntryID     uint   `json:"entryid"`
	ProjectID   uint   `json:"projectid"`
	StudentID   uint   `json:"studentid"`
	OldStatus   int    `json:"oldstatus"`
	NewStatus   int    `json:"newstatus"`
	StatusLabel string `json:"statuslabel"`
}

type Broadcaster interface {
	BroadcastStatusChange(ev StatusEvent)
}

// EntryService owns the entry lifecycle: creation, capability-and-status
// gated updates, and cascading deletion.
type EntryService struct {
	Repos  *repository.Repos
	Schema *SchemaService
	Authz  Authorizer
	Files  FileLister
	Events Broadcaster
}

func NewEntryService(repos *repository.Repos, schemaSvc *SchemaService, authz Authorizer) *EntryService {
	return &EntryService{
		Repos:  repos,
		Schema: schemaSvc,
		Authz:  authz,
	}
}

type fieldRef struct {
	field schema.Field
	cat   schema.Category
}

func indexFields(cats []schema.Category) map[string]fieldRef {
	index := make(map[string]fieldRef)
	for _, cat := range cats {
		for _, f := range cat.Fields {
			index[f.IDNumber] = fieldRef{field: f, cat: cat}
		}
	}
	return index
}

// sortedFieldKeys makes validation order deterministic so the same bad
// submission always names the same offending field.
func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CreateEntry creates an entry at the supplied status (default 0) and
// writes every submitted value. Creation is not gated per field: a fresh
// entry is by definition at its creator's own stage.
func (s *EntryService) CreateEntry(actorID uint, input entry.CreateEntryDTO) (uint, error) {
	fs, err := s.Repos.Schema.GetFormSetByIDNumber(input.FormSet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("form set not found", input.FormSet)
		}
		return 0, err
	}

	cats, err := s.Schema.GetStructure(input.FormSet, i18n.DefaultCode)
	if err != nil {
		return 0, err
	}
	if input.Status < 0 || input.Status > TerminalStatus(cats) {
		return 0, apperrors.Validation("status out of range", input.FormSet)
	}

	studentID := input.StudentID
	if studentID == 0 {
		studentID = actorID
	}

	e := entry.Entry{
		FormSetID:     fs.ID,
		ProjectID:     input.ProjectID,
		StudentID:     studentID,
		ParentEntryID: input.ParentEntryID,
		EntryStatus:   input.Status,
		UserModified:  actorID,
	}

	index := indexFields(cats)
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Entry.CreateEntry(&e); err != nil {
			return err
		}
		return writeValues(tx, index, e.ID, input.Fields)
	})
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

// UpdateEntry validates every submitted field against the entry's current
// status before writing anything. A nil target status means plain
// progression to the next stage; an explicit target may jump anywhere in
// range, including backwards.
func (s *EntryService) UpdateEntry(actorID, entryID uint, input entry.UpdateEntryDTO) (entry.Entry, error) {
	e, err := s.Repos.Entry.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entry.Entry{}, apperrors.NotFound("entry not found", "")
		}
		return entry.Entry{}, err
	}

	fs, err := s.Repos.Schema.GetFormSetByID(e.FormSetID)
	if err != nil {
		return entry.Entry{}, err
	}
	cats, err := s.Schema.GetStructure(fs.IDNumber, i18n.DefaultCode)
	if err != nil {
		return entry.Entry{}, err
	}
	caps, err := s.Authz.Capabilities(actorID, e.ProjectID)
	if err != nil {
		return entry.Entry{}, err
	}

	// All fields are checked against the pre-update status; the whole
	// update fails on the first refusal.
	index := indexFields(cats)
	for _, idnumber := range sortedFieldKeys(input.Fields) {
		ref, ok := index[idnumber]
		if !ok {
			return entry.Entry{}, apperrors.NotFound("unknown field", idnumber)
		}
		if !CanEditCategory(ref.cat, e.EntryStatus, caps) {
			return entry.Entry{}, apperrors.PermissionDenied("field is not editable at this stage", idnumber)
		}
	}

	oldStatus := e.EntryStatus
	newStatus := oldStatus
	if input.Status != nil {
		if *input.Status < 0 || *input.Status > TerminalStatus(cats) {
			return entry.Entry{}, apperrors.Validation("status out of range", fs.IDNumber)
		}
		newStatus = *input.Status
	} else if oldStatus <= MaxStatus(cats) {
		newStatus = oldStatus + 1
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := writeValues(tx, index, e.ID, input.Fields); err != nil {
			return err
		}
		e.EntryStatus = newStatus
		e.UserModified = actorID
		if err := tx.Entry.UpdateEntry(&e); err != nil {
			return err
		}
		if newStatus != oldStatus {
			return s.enqueueNotification(tx, e, fs, cats, oldStatus, newStatus)
		}
		return nil
	})
	if err != nil {
		return entry.Entry{}, err
	}

	if newStatus != oldStatus && s.Events != nil {
		label, _ := s.Schema.StatusMessage(newStatus, fs.IDNumber, i18n.DefaultCode)
		s.Events.BroadcastStatusChange(StatusEvent{
			EntryID:     e.ID,
			ProjectID:   e.ProjectID,
			StudentID:   e.StudentID,
			OldStatus:   oldStatus,
			NewStatus:   newStatus,
			StatusLabel: label,
		})
	}
	return e, nil
}

// DeleteEntry removes an entry and its values. Allowed for the owning
// student or holders of the blanket edit capability, regardless of stage.
// Values go first; a failure there leaves the entry untouched.
func (s *EntryService) DeleteEntry(actorID, entryID uint) error {
	e, err := s.Repos.Entry.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("entry not found", "")
		}
		return err
	}

	if e.StudentID != actorID {
		caps, err := s.Authz.Capabilities(actorID, e.ProjectID)
		if err != nil {
			return err
		}
		if !caps.Has(schema.CapEdit) {
			return apperrors.PermissionDenied("not allowed to delete this entry", "")
		}
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Entry.DeleteValuesByEntry(e.ID); err != nil {
			return apperrors.Wrap(apperrors.KindUnknown, "failed to delete entry values", err)
		}
		return tx.Entry.DeleteEntry(e.ID)
	})
}

// GetEntry returns an entry with its values rendered for display,
// filtered to the categories and fields the actor may see.
func (s *EntryService) GetEntry(actorID, entryID uint, locale string) (entry.EntryDetail, error) {
	e, err := s.Repos.Entry.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entry.EntryDetail{}, apperrors.NotFound("entry not found", "")
		}
		return entry.EntryDetail{}, err
	}

	fs, err := s.Repos.Schema.GetFormSetByID(e.FormSetID)
	if err != nil {
		return entry.EntryDetail{}, err
	}
	cats, err := s.Schema.GetStructure(fs.IDNumber, locale)
	if err != nil {
		return entry.EntryDetail{}, err
	}
	caps, err := s.Authz.Capabilities(actorID, e.ProjectID)
	if err != nil {
		return entry.EntryDetail{}, err
	}

	values, err := s.Repos.Entry.ListValues(e.ID)
	if err != nil {
		return entry.EntryDetail{}, err
	}
	byField := make(map[uint]entry.FieldValue, len(values))
	for _, v := range values {
		byField[v.FieldID] = v
	}

	loc := i18n.Get(locale)
	res := s.resolvers()
	display := make(map[string]string)
	for _, cat := range VisibleCategories(cats, e.EntryStatus) {
		for _, f := range cat.Fields {
			if !CanViewField(f, e.StudentID, actorID, caps) {
				continue
			}
			fv, ok := byField[f.ID]
			if !ok {
				continue
			}
			ft := fieldtype.Type(f.Type)
			cfg := fieldtype.ParseConfig(ft, f.ConfigData)
			display[f.IDNumber] = fieldtype.DisplayValue(ft, f.ID, storedValue(ft, fv), cfg, loc, res)
		}
	}

	label, err := s.Schema.StatusMessage(e.EntryStatus, fs.IDNumber, locale)
	if err != nil {
		return entry.EntryDetail{}, err
	}
	return entry.EntryDetail{Entry: e, StatusLabel: label, Values: display}, nil
}

func (s *EntryService) resolvers() fieldtype.Resolvers {
	res := fieldtype.Resolvers{LookupName: s.Schema.LookupResolver()}
	if s.Files != nil {
		res.ListFiles = s.Files.ListFilenames
	}
	return res
}

func (s *EntryService) enqueueNotification(tx *repository.Repos, e entry.Entry, fs schema.FormSet, cats []schema.Category, oldStatus, newStatus int) error {
	recipient := NextRecipient(cats, newStatus)
	if recipient == "" {
		return nil
	}

	payload, err := json.Marshal(notification.Payload{
		EntryID:   e.ID,
		StudentID: e.StudentID,
		FormSet:   fs.IDNumber,
	})
	if err != nil {
		return err
	}
	task := notification.Task{
		TaskID:        uuid.NewString(),
		EntryID:       e.ID,
		ProjectID:     e.ProjectID,
		RecipientRole: recipient,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		Payload:       datatypes.JSON(payload),
		Status:        notification.StatusPending,
	}
	if err := tx.Notification.CreateTask(&task); err != nil {
		return err
	}
	log.Printf("queued %s notification for entry %d (%d -> %d)", recipient, e.ID, oldStatus, newStatus)
	return nil
}

// writeValues converts and stores submitted raw values. Unknown field
// idnumbers abort the write.
func writeValues(tx *repository.Repos, index map[string]fieldRef, entryID uint, fields map[string]any) error {
	for _, idnumber := range sortedFieldKeys(fields) {
		ref, ok := index[idnumber]
		if !ok {
			return apperrors.NotFound("unknown field", idnumber)
		}
		ft := fieldtype.Type(ref.field.Type)
		cfg := fieldtype.ParseConfig(ft, ref.field.ConfigData)
		v := fieldtype.ConvertToStorage(ft, fields[idnumber], cfg)
		fv := fieldValueFrom(ref.field.ID, entryID, v)
		if err := tx.Entry.UpsertValue(&fv); err != nil {
			return err
		}
	}
	return nil
}

// fieldValueFrom populates exactly one typed column, chosen by the slot.
func fieldValueFrom(fieldID, entryID uint, v fieldtype.Value) entry.FieldValue {
	fv := entry.FieldValue{FieldID: fieldID, EntryID: entryID}
	switch v.Slot {
	case fieldtype.SlotInt:
		fv.IntValue = &v.Int
	case fieldtype.SlotDec:
		fv.DecValue = &v.Dec
	case fieldtype.SlotShortChar:
		fv.ShortCharValue = &v.Str
	case fieldtype.SlotText:
		fv.TextValue = &v.Str
	default:
		fv.CharValue = &v.Str
	}
	return fv
}

// storedValue reads back the slot the field type dictates; the columns
// themselves are never inspected to guess.
func storedValue(t fieldtype.Type, fv entry.FieldValue) fieldtype.Value {
	v := fieldtype.Value{Slot: fieldtype.StorageSlot(t)}
	switch v.Slot {
	case fieldtype.SlotInt:
		if fv.IntValue != nil {
			v.Int = *fv.IntValue
		}
	case fieldtype.SlotDec:
		if fv.DecValue != nil {
			v.Dec = *fv.DecValue
		}
	case fieldtype.SlotShortChar:
		if fv.ShortCharValue != nil {
			v.Str = *fv.ShortCharValue
		}
	case fieldtype.SlotText:
		if fv.TextValue != nil {
			v.Str = *fv.TextValue
		}
	default:
		if fv.CharValue != nil {
			v.Str = *fv.CharValue
		}
	}
	return v
}
