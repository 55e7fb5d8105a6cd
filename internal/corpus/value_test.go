package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"textcorpus/internal/domain"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{}},
		{"string", "a", []string{"a"}},
		{"string slice", []string{"a", "b"}, []string{"a", "b"}},
		{"any slice", []any{"a", "b"}, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Texts())
		})
	}
}

func TestFromValue_Invalid(t *testing.T) {
	for _, in := range []any{42, []any{"a", 1}, map[string]any{"text": "a"}, []int{1}} {
		_, err := FromValue(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%v", in)
	}
}

func TestFromValue_DecodedYAML(t *testing.T) {
	var v any
	require.NoError(t, yaml.Unmarshal([]byte("- one\n- two\n"), &v))
	c, err := FromValue(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, c.Texts())
}

func TestAttributesFromValue(t *testing.T) {
	var v any
	require.NoError(t, yaml.Unmarshal([]byte("- {lang: en}\n- {lang: de, year: 2001}\n"), &v))

	attrs, err := AttributesFromValue(v)
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "en", attrs[0]["lang"])
	assert.Equal(t, 2001, attrs[1]["year"])

	c := New("a", "b")
	_, err = c.SetAttributes(attrs)
	require.NoError(t, err)
	assert.Equal(t, "de", c.Doc(1).Attributes["lang"])
}

func TestAttributesFromValue_Typed(t *testing.T) {
	attrs, err := AttributesFromValue([]map[string]any{{"k": 1}})
	require.NoError(t, err)
	assert.Equal(t, domain.Attributes{"k": 1}, attrs[0])
}

func TestAttributesFromValue_Invalid(t *testing.T) {
	for _, in := range []any{nil, "x", []any{"x"}, []any{map[string]any{}, 3}} {
		_, err := AttributesFromValue(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%v", in)
	}
}
