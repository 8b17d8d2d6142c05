package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndsWithSingleDot(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Summary.", true},
		{"Summary...", false},
		{"Summary..", false},
		{"Section 1.2.", true},
		{".", true},
		{"  Summary.  ", true},
		{"1. Introduction", false},
		{"Introduction", false},
		{"", false},
		{"..", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, EndsWithSingleDot(tt.text))
		})
	}
}

func TestBlacklist_CaseInsensitiveSubstring(t *testing.T) {
	bl := newBlacklist([]string{"Page", "draft", " ", ""})

	assert.True(t, bl.matches("Homepage Design"))
	assert.True(t, bl.matches("DRAFT v2"))
	assert.False(t, bl.matches("Final Report"))
	assert.Len(t, bl, 2)

	assert.False(t, blacklist(nil).matches("anything"))
}

func TestTextLength_CountsRunes(t *testing.T) {
	assert.Equal(t, 5, textLength("héllo"))
	assert.Equal(t, 3, textLength("日本語"))
}
