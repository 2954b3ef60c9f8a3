package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/core/domain"
)

func TestVersionPattern_Matches(t *testing.T) {
	known := []string{"1.16.5", "1.17", "1.18.2", "1.19", "1.19.4", "1.20.1"}

	tests := []struct {
		pattern  domain.VersionPattern
		version  string
		versions []string
		want     bool
	}{
		{"1.19", "1.19", known, true},
		{"1.19", "1.19.4", known, false},
		{"1.19+", "1.20.1", known, true},
		{"1.19+", "1.18.2", known, false},
		{"1.19-", "1.17", known, true},
		{"1.19-", "1.19.4", known, false},
		{"1.17..1.19", "1.18.2", known, true},
		{"1.17..1.19", "1.19", known, true},
		{"1.17..1.19", "1.19.4", known, false},
		{"*", "anything", nil, true},
		{"latest", "1.20.1", known, true},
		{"latest", "1.19", known, false},
		{"latest", "1.19", nil, false},
		// Versions missing from the list fall back to dotted comparison.
		{"1.19+", "1.21", known, true},
		{"1.9+", "1.10", nil, true},
		{"1.16..1.18", "1.17.1", nil, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern)+"@"+tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.version, tt.versions))
		})
	}
}

func TestVersionPattern_Validate(t *testing.T) {
	valid := []domain.VersionPattern{"1.19", "1.19+", "1.19-", "1.16..1.19", "*", "latest"}
	for _, p := range valid {
		require.NoError(t, p.Validate(), string(p))
	}

	invalid := []domain.VersionPattern{"", "+", "-", "..1.19", "1.16..", "1..2..3"}
	for _, p := range invalid {
		err := p.Validate()
		require.Error(t, err, string(p))
		assert.ErrorContains(t, err, domain.ErrInvalidVersionPattern.Error())
	}
}
