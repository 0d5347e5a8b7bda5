package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePattern(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"lowercases", "How Many Leave Days Do I Get?", "how many leave days do i get?"},
		{"trims surrounding whitespace", "  sick leave  ", "sick leave"},
		{"collapses inner whitespace", "annual \t leave\n balance", "annual leave balance"},
		{"already normalized", "maternity leave policy", "maternity leave policy"},
		{"empty stays empty", "", ""},
		{"whitespace only collapses to empty", "   \t\n  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePattern(tt.query))
		})
	}
}

func TestNormalizePatternCapsLength(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := normalizePattern(long)
	assert.Len(t, got, 200)
	assert.Equal(t, strings.Repeat("a", 200), got)
}
