package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"The Witcher 3", "Witcher 3"},
		{"A Plague Tale", "Plague Tale"},
		{"An Untitled Story", "Untitled Story"},
		{"Doom", "Doom"},
		{"Theme Hospital", "Theme Hospital"},
		{"Another World", "Another World"},
		{"THE Witcher", "THE Witcher"},
		{"the witcher", "the witcher"},
		{"The A Team", "A Team"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, CleanName(tc.name), "CleanName(%q)", tc.name)
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	for _, name := range []string{"The Witcher 3", "A Plague Tale", "Doom"} {
		once := CleanName(name)
		assert.Equal(t, once, CleanName(once))
	}
}
