package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinAndSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		value    string
		label    string
	}{
		{"single", []string{"Name"}, "Name", "Name"},
		{"nested", []string{"Account", "Name"}, "Account::Name", "Account.Name"},
		{"deep", []string{"A", "B", "C"}, "A::B::C", "A.B.C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, JoinPath(tt.segments))
			assert.Equal(t, tt.label, Label(tt.segments))
			assert.Equal(t, tt.segments, SplitPath(tt.value))
			assert.Equal(t, tt.label, LabelFor(tt.value))
		})
	}
}

func TestSplitPath_Empty(t *testing.T) {
	assert.Equal(t, []string{}, SplitPath(""))
	assert.Empty(t, JoinPath(nil))
}
