package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@sub.domain.co"))
	assert.False(t, IsValidEmail("alice"))
	assert.False(t, IsValidEmail("alice@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("alice@example"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-03-11")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = IsValidDate("11-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidMonthIndex(t *testing.T) {
	assert.True(t, IsValidMonthIndex(0))
	assert.True(t, IsValidMonthIndex(11))
	assert.False(t, IsValidMonthIndex(-1))
	assert.False(t, IsValidMonthIndex(12))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(24))
	assert.False(t, IsValidYear(0))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email is required", m["email"])
	assert.Contains(t, errs.Error(), "name: name is required")
}
