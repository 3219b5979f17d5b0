package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// jsonNull reports a JSON null literal. Null fields are skipped entirely,
// leaving the Go zero value, so a null in a config file never erases a
// default during merging.
func jsonNull(data []byte) bool {
	return bytes.Equal(data, []byte("null"))
}

// FlexBool is a boolean that tolerates the loose spellings config files and
// CLI flags arrive with: true/false, "1"/"0", "yes"/"no", "on"/"off".
// The empty value means "not set".
type FlexBool string

// IsSet reports whether the field was present at all.
func (b FlexBool) IsSet() bool { return b != "" }

// Bool returns the parsed value, or def when unset or unrecognized.
func (b FlexBool) Bool(def bool) bool {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return def
	}
}

// canonical rewrites the value to "true"/"false", dropping unrecognized
// input so the default shows through. Idempotent.
func (b FlexBool) canonical() FlexBool {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "":
		return b
	case "true", "1", "yes", "on":
		return "true"
	case "false", "0", "no", "off":
		return "false"
	default:
		return ""
	}
}

func (b *FlexBool) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar for boolean field, got %v", node.Kind)
	}
	*b = FlexBool(node.Value)
	return nil
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	if jsonNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = FlexBool(s)
		return nil
	}
	*b = FlexBool(strings.TrimSpace(string(data)))
	return nil
}

// FlexInt is an integer that may be written as a number or a numeric
// string. The raw text is kept so validation errors can quote it.
type FlexInt string

// IsSet reports whether the field was present at all.
func (i FlexInt) IsSet() bool { return i != "" }

// Int parses the value.
func (i FlexInt) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(i)))
}

// canonical trims and re-renders parseable values. Unparseable input is
// kept verbatim so validation can quote it. Idempotent.
func (i FlexInt) canonical() FlexInt {
	if !i.IsSet() {
		return i
	}
	v, err := i.Int()
	if err != nil {
		return FlexInt(strings.TrimSpace(string(i)))
	}
	return FlexInt(strconv.Itoa(v))
}

func (i *FlexInt) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar for integer field, got %v", node.Kind)
	}
	*i = FlexInt(node.Value)
	return nil
}

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	if jsonNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = FlexInt(s)
		return nil
	}
	*i = FlexInt(strings.TrimSpace(string(data)))
	return nil
}

// FlexFloat is a non-negative threshold that may be written as a number or
// a numeric string. Non-numeric input is cleared during normalization so
// the built-in default applies.
type FlexFloat string

// IsSet reports whether the field was present at all.
func (f FlexFloat) IsSet() bool { return f != "" }

// Float parses the value.
func (f FlexFloat) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
}

// Value returns the parsed value, or def when unset or unparseable.
func (f FlexFloat) Value(def float64) float64 {
	v, err := f.Float()
	if err != nil {
		return def
	}
	return v
}

// canonical drops non-numeric input and trims whitespace. Idempotent.
func (f FlexFloat) canonical() FlexFloat {
	if !f.IsSet() {
		return f
	}
	v, err := f.Float()
	if err != nil {
		return ""
	}
	return FlexFloat(strconv.FormatFloat(v, 'f', -1, 64))
}

func (f *FlexFloat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar for numeric field, got %v", node.Kind)
	}
	*f = FlexFloat(node.Value)
	return nil
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if jsonNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexFloat(s)
		return nil
	}
	*f = FlexFloat(strings.TrimSpace(string(data)))
	return nil
}

// StringList is a list that may be written as a YAML/JSON sequence or as a
// single comma-separated string. Elements are trimmed and empties dropped,
// so normalizing an already-normalized list is a no-op.
type StringList []string

// Normalize splits comma-separated elements, trims whitespace, and drops
// empty entries. Idempotent.
func (l StringList) Normalize() StringList {
	if l == nil {
		return nil
	}
	out := make(StringList, 0, len(l))
	for _, item := range l {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = StringList{node.Value}.Normalize()
		return nil
	}
	var raw []string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*l = StringList(raw).Normalize()
	return nil
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	if jsonNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = StringList{s}.Normalize()
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = StringList(raw).Normalize()
	return nil
}

// Duration accepts a Go duration string ("45s") or a bare number of
// seconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar for duration field, got %v", node.Kind)
	}
	return d.parse(node.Value)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	if jsonNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	return d.parse(strings.TrimSpace(string(data)))
}

func (d *Duration) parse(s string) error {
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		*d = Duration(time.Duration(secs * float64(time.Second)))
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}
