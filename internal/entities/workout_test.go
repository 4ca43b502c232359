package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Run("accepts a normal name", func(t *testing.T) {
		assert.NoError(t, ValidateName("ベンチプレス"))
	})

	t.Run("rejects empty and blank names", func(t *testing.T) {
		assert.Error(t, ValidateName(""))
		assert.Error(t, ValidateName("   "))
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		// 64 three-byte characters is 192 bytes but still within the limit
		assert.NoError(t, ValidateName(strings.Repeat("胸", NameMaxLength)))
		assert.Error(t, ValidateName(strings.Repeat("胸", NameMaxLength+1)))
	})
}

func TestDateOf(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	d := DateOf(time.Date(2025, 2, 15, 23, 30, 0, 0, jst))

	got := time.Time(d)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, "2025-02-15", FormatDate(d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-15", FormatDate(d))

	_, err = ParseDate("15/02/2025")
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	models := All()
	require.Len(t, models, 3)
	_, ok := models[0].(*Category)
	assert.True(t, ok, "categories must be created first")
}

func TestValidateSet(t *testing.T) {
	assert.NoError(t, ValidateSet(0, 0))
	assert.NoError(t, ValidateSet(60, 10))
	assert.Error(t, ValidateSet(-5, 10))
	assert.Error(t, ValidateSet(60, -1))
}
