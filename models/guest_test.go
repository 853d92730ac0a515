package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuestFullName(t *testing.T) {
	g := Guest{Surname: "Ivanov", FirstName: "Ivan", MiddleName: "Ivanovich"}
	assert.Equal(t, "Ivanov Ivan Ivanovich", g.FullName())

	g = Guest{Surname: "Ivanov"}
	assert.Equal(t, "Ivanov", g.FullName())

	g = Guest{FirstName: " Ivan "}
	assert.Equal(t, "Ivan", g.FullName())

	g = Guest{}
	assert.Equal(t, "", g.FullName())
}

func TestGuestHasName(t *testing.T) {
	assert.True(t, (&Guest{Surname: "Ivanov"}).HasName())
	assert.True(t, (&Guest{MiddleName: "Ivanovich"}).HasName())
	assert.False(t, (&Guest{Phone: "+79991234567"}).HasName())
	assert.False(t, (&Guest{Surname: "   "}).HasName())
}
