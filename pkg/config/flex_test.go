package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

func TestFlexBool_Bool(t *testing.T) {
	tests := []struct {
		input    FlexBool
		def      bool
		expected bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"TRUE", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"off", true, false},

		// Unset or unrecognized keeps the default
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Bool(tt.def))
		})
	}
}

func TestFlexBool_Canonical(t *testing.T) {
	assert.Equal(t, FlexBool("true"), FlexBool("Yes").canonical())
	assert.Equal(t, FlexBool("false"), FlexBool("0").canonical())
	assert.Equal(t, FlexBool(""), FlexBool("banana").canonical())
	assert.Equal(t, FlexBool(""), FlexBool("").canonical())

	// Idempotent
	for _, in := range []FlexBool{"true", "off", "nonsense", ""} {
		once := in.canonical()
		assert.Equal(t, once, once.canonical())
	}
}

func TestStringList_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    StringList
		expected StringList
	}{
		{"nil passes through", nil, nil},
		{"already normalized", StringList{"a", "b"}, StringList{"a", "b"}},
		{"comma-separated element", StringList{"a,b, c"}, StringList{"a", "b", "c"}},
		{"empties dropped", StringList{"", " ", "a,,b"}, StringList{"a", "b"}},
		{"whitespace trimmed", StringList{" visual-test "}, StringList{"visual-test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize())
		})
	}
}

func TestStringList_Normalize_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.String(), 0, 8).Draw(t, "raw")
		once := StringList(raw).Normalize()
		twice := once.Normalize()
		assert.Equal(t, once, twice)
	})
}

func TestStringList_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Tags StringList `yaml:"tags"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(`tags: "visual, layout"`), &doc))
	assert.Equal(t, StringList{"visual", "layout"}, doc.Tags)

	doc.Tags = nil
	require.NoError(t, yaml.Unmarshal([]byte("tags:\n  - visual\n  - layout\n"), &doc))
	assert.Equal(t, StringList{"visual", "layout"}, doc.Tags)
}

func TestFlexInt_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Port FlexInt `yaml:"port"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(`port: 9009`), &doc))
	n, err := doc.Port.Int()
	require.NoError(t, err)
	assert.Equal(t, 9009, n)

	require.NoError(t, yaml.Unmarshal([]byte(`port: "9010"`), &doc))
	n, err = doc.Port.Int()
	require.NoError(t, err)
	assert.Equal(t, 9010, n)

	require.NoError(t, yaml.Unmarshal([]byte(`port: banana`), &doc))
	_, err = doc.Port.Int()
	assert.Error(t, err)
}

func TestUnmarshalJSON_NullLeavesFieldUnset(t *testing.T) {
	// A JSON null must behave like an absent key: the field stays at its
	// zero value so merging never mistakes it for a present override.
	var doc struct {
		Enabled FlexBool   `json:"enabled"`
		Port    FlexInt    `json:"port"`
		Ratio   FlexFloat  `json:"ratio"`
		Tags    StringList `json:"tags"`
		Timeout Duration   `json:"timeout"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{
		"enabled": null,
		"port": null,
		"ratio": null,
		"tags": null,
		"timeout": null
	}`), &doc))

	assert.False(t, doc.Enabled.IsSet())
	assert.False(t, doc.Port.IsSet())
	assert.False(t, doc.Ratio.IsSet())
	assert.Nil(t, doc.Tags)
	assert.Zero(t, doc.Timeout)
}

func TestDuration_Unmarshal(t *testing.T) {
	var doc struct {
		Timeout Duration `yaml:"timeout"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(`timeout: 45s`), &doc))
	assert.Equal(t, "45s", doc.Timeout.String())

	// Bare numbers are seconds
	require.NoError(t, yaml.Unmarshal([]byte(`timeout: 10`), &doc))
	assert.Equal(t, "10s", doc.Timeout.String())

	assert.Error(t, yaml.Unmarshal([]byte(`timeout: soon`), &doc))
}
