// Package fieldtype maps each supported form field type to its typed
// storage slot, converts submitted raw values into the stored
// representation, and renders stored values for display.
package fieldtype

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/projetvet/projetvet-go/pkg/i18n"
)

type Type string

const (
	TypeText         Type = "text"
	TypeNumber       Type = "number"
	TypeTextarea     Type = "textarea"
	TypeSelect       Type = "select"
	TypeCheckbox     Type = "checkbox"
	TypeAutocomplete Type = "autocomplete"
	TypeTagSelect    Type = "tagselect"
	TypeTagConfirm   Type = "tagconfirm"
	TypeDate         Type = "date"
	TypeDatetime     Type = "datetime"
	TypeButton       Type = "button"
	TypeFileManager  Type = "filemanager"
)

// Slot selects which typed column of form_data holds the value.
type Slot int

const (
	SlotInt Slot = iota
	SlotDec
	SlotShortChar
	SlotChar
	SlotText
)

// StorageSlot is a fixed table. Unknown types fall back to the char slot.
func StorageSlot(t Type) Slot {
	switch t {
	case TypeNumber, TypeSelect, TypeCheckbox, TypeDate, TypeDatetime, TypeFileManager:
		return SlotInt
	case TypeTextarea, TypeAutocomplete, TypeTagSelect, TypeTagConfirm:
		return SlotText
	default:
		return SlotChar
	}
}

// Value is a stored field value in slot-normalized form. Int carries the
// integer slots, Str the character ones.
type Value struct {
	Slot Slot
	Int  int64
	Dec  float64
	Str  string
}

// Resolvers are the external collaborators display needs: the lookup
// table for tag fields and the file store for filemanager areas.
type Resolvers struct {
	LookupName func(fieldID uint, uniqueID string) string
	ListFiles  func(areaID int64) []string
}

// ConvertToStorage turns a submitted raw value into its stored form.
// Selects resolve either the option key or its label and default to 0;
// tag-style inputs serialize to a JSON id array, "[]" when not a list.
func ConvertToStorage(t Type, raw any, cfg Config) Value {
	v := Value{Slot: StorageSlot(t)}

	switch t {
	case TypeNumber, TypeCheckbox, TypeDate, TypeDatetime, TypeFileManager:
		v.Int = asInt(raw)
	case TypeSelect:
		v.Int = resolveOption(raw, cfg)
	case TypeAutocomplete, TypeTagSelect, TypeTagConfirm:
		v.Str = marshalIDList(raw)
	default:
		// text, textarea, button and anything unknown pass through.
		v.Str = asString(raw)
	}
	return v
}

// DisplayValue renders a stored value for list views and read-only forms.
func DisplayValue(t Type, fieldID uint, v Value, cfg Config, loc *i18n.Locale, res Resolvers) string {
	switch t {
	case TypeNumber:
		return strconv.FormatInt(v.Int, 10)
	case TypeCheckbox:
		if v.Int != 0 {
			return loc.T("yes")
		}
		return loc.T("no")
	case TypeDate:
		return loc.FormatDate(v.Int)
	case TypeDatetime:
		return loc.FormatDatetime(v.Int)
	case TypeSelect:
		if sc, ok := cfg.(SelectConfig); ok {
			return sc.Options[strconv.FormatInt(v.Int, 10)]
		}
		return ""
	case TypeAutocomplete:
		ac, _ := cfg.(AutocompleteConfig)
		var labels []string
		for _, id := range unmarshalIDList(v.Str) {
			if label, ok := ac.Options[id]; ok {
				labels = append(labels, label)
			}
		}
		return strings.Join(labels, ", ")
	case TypeTagSelect, TypeTagConfirm:
		if res.LookupName == nil {
			return ""
		}
		var names []string
		for _, id := range unmarshalIDList(v.Str) {
			if name := res.LookupName(fieldID, id); name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, ", ")
	case TypeFileManager:
		if res.ListFiles == nil {
			return loc.T("nofiles")
		}
		names := res.ListFiles(v.Int)
		if len(names) == 0 {
			return loc.T("nofiles")
		}
		return strings.Join(names, ", ")
	default:
		return v.Str
	}
}

func resolveOption(raw any, cfg Config) int64 {
	sc, ok := cfg.(SelectConfig)
	if !ok {
		return 0
	}
	s := asString(raw)
	if _, present := sc.Options[s]; present {
		return asInt(s)
	}
	for key, label := range sc.Options {
		if label == s {
			return asInt(key)
		}
	}
	return 0
}

// marshalIDList serializes a list of selected ids. Accepting an already
// serialized array keeps conversion idempotent for stored values.
func marshalIDList(raw any) string {
	ids := asIDList(raw)
	if ids == nil {
		return "[]"
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func unmarshalIDList(stored string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(stored), &ids); err != nil {
		return nil
	}
	return ids
}

func asIDList(raw any) []string {
	switch val := raw.(type) {
	case []string:
		return val
	case []any:
		ids := make([]string, 0, len(val))
		for _, item := range val {
			ids = append(ids, asString(item))
		}
		return ids
	case string:
		var ids []string
		if err := json.Unmarshal([]byte(val), &ids); err == nil {
			return ids
		}
		return nil
	default:
		return nil
	}
}

func asString(raw any) string {
	switch val := raw.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers arrive as float64; keep integers unadorned.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func asInt(raw any) int64 {
	switch val := raw.(type) {
	case int:
		return int64(val)
	case int64:
		return val
	case uint:
		return int64(val)
	case float64:
		return int64(val)
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		switch strings.ToLower(s) {
		case "true", "on", "yes":
			return 1
		}
		return 0
	default:
		return 0
	}
}
