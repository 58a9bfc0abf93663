package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHebrewDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		person Person
		want   string
	}{
		{"both parts", Person{HebrewName: "לוי", FatherHebrewName: "יעקב"}, "לוי בן יעקב"},
		{"missing father", Person{HebrewName: "לוי"}, "לוי"},
		{"missing own name", Person{FatherHebrewName: "יעקב"}, " בן יעקב"},
		{"both missing", Person{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.person.HebrewDisplayName())
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Moshe Levin", Person{FirstName: "Moshe", LastName: "Levin"}.FullName())
	assert.Equal(t, "Moshe", Person{FirstName: "Moshe"}.FullName())
}

func TestIsValidTribe(t *testing.T) {
	for _, tribe := range Tribes {
		assert.True(t, IsValidTribe(tribe))
	}
	assert.False(t, IsValidTribe(""))
	assert.False(t, IsValidTribe("Israelite"))
}
