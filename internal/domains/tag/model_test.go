package tag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "go", NormalizeName("  Go "))
	assert.Equal(t, "web-dev", NormalizeName("WEB-DEV"))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "go", false},
		{"with separators", "web_dev-2", false},
		{"at max length", strings.Repeat("a", 50), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 51), true},
		{"uppercase", "Go", true},
		{"with space", "web dev", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
