package wp

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// FieldKind is the semantic class of a custom field value, decided once at
// decode time rather than re-sniffed on every render.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldLink
	FieldMedia
	FieldDate
	FieldLocation
	FieldUnknown
)

func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldLink:
		return "link"
	case FieldMedia:
		return "media"
	case FieldDate:
		return "date"
	case FieldLocation:
		return "location"
	default:
		return "unknown"
	}
}

// CustomField is one classified custom ("acf") field.
type CustomField struct {
	Name string
	Kind FieldKind

	// Value is the display text for Text and Unknown fields, the URL for
	// Link and Media fields, and the label for Link fields with a title.
	Value string
	Label string

	Date time.Time // set for FieldDate
	Lat  float64   // set for FieldLocation
	Lng  float64   // set for FieldLocation
}

// ClassifyFields decodes a raw custom-field object into classified fields,
// sorted by name. Empty values and underscore-prefixed system fields are
// dropped. A nil or malformed payload yields no fields.
func ClassifyFields(raw json.RawMessage) []CustomField {
	if len(raw) == 0 {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}

	fields := make([]CustomField, 0, len(obj))
	for name, value := range obj {
		if strings.HasPrefix(name, "_") {
			continue
		}
		field, ok := classifyValue(name, value)
		if !ok {
			continue
		}
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields
}

func classifyValue(name string, raw json.RawMessage) (CustomField, bool) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return CustomField{}, false
	}

	switch v := value.(type) {
	case nil:
		return CustomField{}, false
	case string:
		return classifyString(name, v)
	case bool:
		label := "No"
		if v {
			label = "Yes"
		}
		return CustomField{Name: name, Kind: FieldText, Value: label}, true
	case float64:
		return CustomField{Name: name, Kind: FieldText, Value: trimFloat(v)}, true
	case map[string]any:
		return classifyObject(name, v)
	default:
		// Arrays and anything else stay opaque.
		return CustomField{Name: name, Kind: FieldUnknown, Value: compactJSON(raw)}, true
	}
}

func classifyString(name, s string) (CustomField, bool) {
	if s == "" {
		return CustomField{}, false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return CustomField{Name: name, Kind: FieldLink, Value: s}, true
	}
	if t, ok := parseFieldDate(s); ok {
		return CustomField{Name: name, Kind: FieldDate, Date: t, Value: s}, true
	}
	return CustomField{Name: name, Kind: FieldText, Value: s}, true
}

// classifyObject maps the common ACF object shapes: image/file fields carry a
// url (plus sizes for images), link fields a title+url pair, date fields a
// date member, map fields lat/lng coordinates.
func classifyObject(name string, obj map[string]any) (CustomField, bool) {
	lat, hasLat := asFloat(obj["lat"])
	lng, hasLng := asFloat(obj["lng"])
	if hasLat && hasLng {
		return CustomField{Name: name, Kind: FieldLocation, Lat: lat, Lng: lng}, true
	}

	if url, ok := obj["url"].(string); ok && url != "" {
		if _, hasSizes := obj["sizes"]; hasSizes {
			return CustomField{Name: name, Kind: FieldMedia, Value: url, Label: asString(obj["alt"])}, true
		}
		label := asString(obj["title"])
		if label == "" {
			label = asString(obj["filename"])
		}
		return CustomField{Name: name, Kind: FieldLink, Value: url, Label: label}, true
	}

	if date, ok := obj["date"].(string); ok {
		if t, parsed := parseFieldDate(date); parsed {
			return CustomField{Name: name, Kind: FieldDate, Date: t, Value: date}, true
		}
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return CustomField{}, false
	}
	return CustomField{Name: name, Kind: FieldUnknown, Value: string(data)}, true
}

var fieldDateLayouts = []string{
	time.RFC3339,
	wpDateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
}

func parseFieldDate(s string) (time.Time, bool) {
	for _, layout := range fieldDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		var f float64
		if err := json.Unmarshal([]byte(n), &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func trimFloat(f float64) string {
	data, _ := json.Marshal(f)
	return string(data)
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
