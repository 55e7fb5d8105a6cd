package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglish_ReturnsCopy(t *testing.T) {
	first := English()
	require.NotEmpty(t, first)
	first[0] = "mutated"

	assert.NotContains(t, English(), "mutated")
	assert.Contains(t, English(), "the")
}

func TestForLanguage(t *testing.T) {
	assert.Equal(t, English(), ForLanguage(""))
	assert.Equal(t, English(), ForLanguage("en"))
	assert.Nil(t, ForLanguage("xx"))
}
