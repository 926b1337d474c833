package fieldtype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projetvet/projetvet-go/pkg/i18n"
)

func TestStorageSlot(t *testing.T) {
	cases := map[Type]Slot{
		TypeText:         SlotChar,
		TypeNumber:       SlotInt,
		TypeTextarea:     SlotText,
		TypeSelect:       SlotInt,
		TypeCheckbox:     SlotInt,
		TypeAutocomplete: SlotText,
		TypeTagSelect:    SlotText,
		TypeTagConfirm:   SlotText,
		TypeDate:         SlotInt,
		TypeDatetime:     SlotInt,
		TypeFileManager:  SlotInt,
		TypeButton:       SlotChar,
		Type("bogus"):    SlotChar,
	}
	for typ, want := range cases {
		assert.Equal(t, want, StorageSlot(typ), "slot for %s", typ)
	}
}

func TestParseConfig_MalformedJSONFallsBack(t *testing.T) {
	cfg := ParseConfig(TypeSelect, []byte(`{options: broken`))
	sc, ok := cfg.(SelectConfig)
	assert.True(t, ok)
	assert.Empty(t, sc.Options)

	cfg = ParseConfig(TypeNumber, nil)
	nc, ok := cfg.(NumberConfig)
	assert.True(t, ok)
	assert.Nil(t, nc.Min)
	assert.Nil(t, nc.Max)
}

func TestConvertSelect_ResolvesKeyOrLabel(t *testing.T) {
	cfg := ParseConfig(TypeSelect, []byte(`{"options":{"2":"Blue"}}`))

	v := ConvertToStorage(TypeSelect, "Blue", cfg)
	assert.Equal(t, int64(2), v.Int)

	v = ConvertToStorage(TypeSelect, "2", cfg)
	assert.Equal(t, int64(2), v.Int)

	v = ConvertToStorage(TypeSelect, "Purple", cfg)
	assert.Equal(t, int64(0), v.Int)
}

func TestConvertNumberCheckboxDate(t *testing.T) {
	assert.Equal(t, int64(42), ConvertToStorage(TypeNumber, "42", NumberConfig{}).Int)
	assert.Equal(t, int64(42), ConvertToStorage(TypeNumber, float64(42), NumberConfig{}).Int)
	assert.Equal(t, int64(0), ConvertToStorage(TypeNumber, "forty-two", NumberConfig{}).Int)

	assert.Equal(t, int64(1), ConvertToStorage(TypeCheckbox, true, CheckboxConfig{}).Int)
	assert.Equal(t, int64(1), ConvertToStorage(TypeCheckbox, "on", CheckboxConfig{}).Int)
	assert.Equal(t, int64(0), ConvertToStorage(TypeCheckbox, "0", CheckboxConfig{}).Int)

	assert.Equal(t, int64(1717200000), ConvertToStorage(TypeDate, "1717200000", DateConfig{}).Int)
}

func TestConvertTagList(t *testing.T) {
	v := ConvertToStorage(TypeTagSelect, []string{"a", "b"}, TagConfig{})
	assert.Equal(t, `["a","b"]`, v.Str)

	v = ConvertToStorage(TypeTagSelect, []any{"a", "b"}, TagConfig{})
	assert.Equal(t, `["a","b"]`, v.Str)

	v = ConvertToStorage(TypeTagSelect, "not a list", TagConfig{})
	assert.Equal(t, `[]`, v.Str)

	// Reapplying conversion to the stored form is a no-op.
	v = ConvertToStorage(TypeTagSelect, `["a","b"]`, TagConfig{})
	assert.Equal(t, `["a","b"]`, v.Str)
}

func TestDisplayTagList_ResolvesNames(t *testing.T) {
	loc := i18n.Get("en")
	res := Resolvers{
		LookupName: func(fieldID uint, uniqueID string) string {
			return map[string]string{"a": "NameA", "b": "NameB"}[uniqueID]
		},
	}

	v := ConvertToStorage(TypeTagSelect, []string{"a", "b"}, TagConfig{})
	assert.Equal(t, "NameA, NameB", DisplayValue(TypeTagSelect, 1, v, TagConfig{}, loc, res))

	// Malformed stored JSON renders as empty, not an error.
	assert.Equal(t, "", DisplayValue(TypeTagSelect, 1, Value{Slot: SlotText, Str: "{oops"}, TagConfig{}, loc, res))
}

func TestDisplayCheckboxAndDate(t *testing.T) {
	en := i18n.Get("en")
	fr := i18n.Get("fr")

	assert.Equal(t, "Yes", DisplayValue(TypeCheckbox, 0, Value{Int: 1}, CheckboxConfig{}, en, Resolvers{}))
	assert.Equal(t, "Non", DisplayValue(TypeCheckbox, 0, Value{Int: 0}, CheckboxConfig{}, fr, Resolvers{}))

	assert.Equal(t, "", DisplayValue(TypeDate, 0, Value{Int: 0}, DateConfig{}, en, Resolvers{}))
	assert.Equal(t, "1 June 2024", DisplayValue(TypeDate, 0, Value{Int: 1717200000}, DateConfig{}, en, Resolvers{}))
}

func TestDisplaySelectAndAutocomplete(t *testing.T) {
	loc := i18n.Get("en")

	sel := ParseConfig(TypeSelect, []byte(`{"options":{"2":"Blue","3":"Red"}}`))
	assert.Equal(t, "Blue", DisplayValue(TypeSelect, 0, Value{Int: 2}, sel, loc, Resolvers{}))
	assert.Equal(t, "", DisplayValue(TypeSelect, 0, Value{Int: 9}, sel, loc, Resolvers{}))

	ac := ParseConfig(TypeAutocomplete, []byte(`{"options":{"a":"Alpha","b":"Beta"}}`))
	v := ConvertToStorage(TypeAutocomplete, []string{"b", "a"}, ac)
	assert.Equal(t, "Beta, Alpha", DisplayValue(TypeAutocomplete, 0, v, ac, loc, Resolvers{}))
}

func TestDisplayFileManager(t *testing.T) {
	loc := i18n.Get("en")

	res := Resolvers{ListFiles: func(areaID int64) []string {
		if areaID == 7 {
			return []string{"radiograph.png", "report.pdf"}
		}
		return nil
	}}

	assert.Equal(t, "radiograph.png, report.pdf", DisplayValue(TypeFileManager, 0, Value{Int: 7}, FileConfig{}, loc, res))
	assert.Equal(t, "No files", DisplayValue(TypeFileManager, 0, Value{Int: 8}, FileConfig{}, loc, res))
}

// Display of a converted value is deterministic and stable under
// re-conversion of the stored form.
func TestRoundTripStability(t *testing.T) {
	loc := i18n.Get("en")
	sel := ParseConfig(TypeSelect, []byte(`{"options":{"2":"Blue"}}`))

	cases := []struct {
		typ Type
		cfg Config
		raw any
	}{
		{TypeText, TextConfig{}, "hello"},
		{TypeNumber, NumberConfig{}, "12"},
		{TypeTextarea, TextareaConfig{}, "long text"},
		{TypeSelect, sel, "Blue"},
		{TypeCheckbox, CheckboxConfig{}, "1"},
		{TypeTagSelect, TagConfig{}, []string{"x"}},
		{TypeDate, DateConfig{}, "1717200000"},
	}
	res := Resolvers{LookupName: func(uint, string) string { return "X" }}

	for _, tc := range cases {
		first := ConvertToStorage(tc.typ, tc.raw, tc.cfg)
		disp1 := DisplayValue(tc.typ, 1, first, tc.cfg, loc, res)

		var stored any
		switch first.Slot {
		case SlotInt:
			stored = first.Int
		default:
			stored = first.Str
		}
		second := ConvertToStorage(tc.typ, stored, tc.cfg)
		disp2 := DisplayValue(tc.typ, 1, second, tc.cfg, loc, res)

		assert.Equal(t, disp1, disp2, "round trip for %s", tc.typ)
	}
}
