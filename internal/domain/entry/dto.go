package entry

// CreateEntryDTO creates an entry for a form set. Fields maps field
// idnumbers to raw submitted values; creation writes them unconditionally
// because a fresh entry is always at the creator's own stage.
type CreateEntryDTO struct {
	FormSet       string         `json:"formset" binding:"required"`
	ProjectID     uint           `json:"projectid" binding:"required"`
	StudentID     uint           `json:"studentid"`
	ParentEntryID uint           `json:"parententryid"`
	Status        int            `json:"status"`
	Fields        map[string]any `json:"fields"`
}

// UpdateEntryDTO edits field values and optionally the workflow status.
// A nil Status means plain progression (current stage + 1); a non-nil
// Status is an explicit target, which may move backwards.
type UpdateEntryDTO struct {
	Fields map[string]any `json:"fields"`
	Status *int           `json:"status"`
}

// EntryDetail is an entry plus its stored values keyed by field idnumber.
type EntryDetail struct {
	Entry       Entry             `json:"entry"`
	StatusLabel string            `json:"statuslabel"`
	Values      map[string]string `json:"values"`
}

// ListField describes one column of a list view.
type ListField struct {
	IDNumber  string `json:"idnumber"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ListOrder int    `json:"listorder"`
}

// ListRow is one entry projected onto the list fields.
type ListRow struct {
	ID           uint              `json:"id"`
	EntryStatus  int               `json:"entrystatus"`
	StatusLabel  string            `json:"statuslabel"`
	TimeModified string            `json:"timemodified"`
	Values       map[string]string `json:"values"`
}

// EntryList is the aggregation payload for list views.
type EntryList struct {
	Entries    []ListRow   `json:"entries"`
	ListFields []ListField `json:"listfields"`
}
