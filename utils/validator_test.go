package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+79991234567",
		"79991234567",
		"8 (999) 123-45-67",
		"+7 999 123 45 67",
		"123456789012345",
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"   ",
		"12345",                // too short
		"1234567890123456",     // too long
		"+7999123456a",         // letters
		"99-91+234567",         // + not leading
		"phone",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+79991234567", NormalizePhone("  +79991234567  "))
	// Separators are kept: the key is the trimmed input, nothing more.
	assert.Equal(t, "8 (999) 123-45-67", NormalizePhone("8 (999) 123-45-67"))
	assert.Equal(t, "", NormalizePhone("   "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ivan@example.com"))
	assert.True(t, IsValidEmail("ivan.petrov+tag@mail.example.org"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("ivan@"))
	assert.False(t, IsValidEmail("ivan@example"))
	assert.False(t, IsValidEmail("not an email"))
}
