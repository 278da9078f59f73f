package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLike_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%soja%", Like("  SOJA "))
	assert.Equal(t, `%50\%%`, Like("50%"))
	assert.Equal(t, `%npk\_20%`, Like("NPK_20"))
	assert.Equal(t, `%a\\b%`, Like(`a\b`))
}
