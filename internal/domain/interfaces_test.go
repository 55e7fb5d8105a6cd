package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_DefaultsAttributes(t *testing.T) {
	doc := NewDocument("hello", nil)
	require.NotNil(t, doc.Attributes)
	assert.Empty(t, doc.Attributes)
	assert.Equal(t, "hello", doc.Text)
}

func TestNewDocument_KeepsAttributes(t *testing.T) {
	attrs := Attributes{"lang": "en"}
	doc := NewDocument("hello", attrs)
	assert.Equal(t, "en", doc.Attributes["lang"])
}

func TestClone_CopiesAttributeMap(t *testing.T) {
	orig := NewDocument("text", Attributes{"k": 1})
	clone := orig.Clone()

	clone.Text = "changed"
	clone.Attributes["k"] = 2
	clone.Attributes["new"] = true

	assert.Equal(t, "text", orig.Text)
	assert.Equal(t, 1, orig.Attributes["k"])
	assert.NotContains(t, orig.Attributes, "new")
}

func TestInput_Implementations(t *testing.T) {
	var inputs []Input
	inputs = append(inputs, Text("raw"), NewDocument("built", nil))
	assert.Len(t, inputs, 2)
}
