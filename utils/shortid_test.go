package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsShortID(t *testing.T) {
	cases := []struct {
		identifier string
		want       bool
	}{
		{"AB1CD", true},
		{"ab1cd", true},
		{"12345", true},
		{"ABCD", false},   // too short
		{"ABCDEF", false}, // too long
		{"AB-CD", false},  // hyphen makes it a slug
		{"my-cafe", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsShortID(tc.identifier), tc.identifier)
	}
}

func TestIsLooseShortID(t *testing.T) {
	assert.True(t, IsLooseShortID("ABCD"))
	assert.True(t, IsLooseShortID("AB1CD"))
	assert.True(t, IsLooseShortID("AB1CDE"))
	assert.False(t, IsLooseShortID("ABC"))
	assert.False(t, IsLooseShortID("AB1CDEF"))
	assert.False(t, IsLooseShortID("my-cafe"))
}

func TestNormalizeShortID(t *testing.T) {
	assert.Equal(t, "AB1CD", NormalizeShortID("ab1cd"))
	assert.Equal(t, "AB1CD", NormalizeShortID("AB1CD"))
}
