package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/adapters/prompt"
)

func TestPrompter_Confirm(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "  YES \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := prompt.New(strings.NewReader(tt.input), &out, false)

			got, err := p.Confirm(t.Context(), "overwrite mods/a.jar?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "! overwrite mods/a.jar? [y/N]: ", out.String())
		})
	}
}

func TestPrompter_AssumeYes(t *testing.T) {
	var out bytes.Buffer
	got, err := prompt.New(strings.NewReader(""), &out, true).Confirm(t.Context(), "overwrite?")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, out.String())
}

func TestPrompter_Canceled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := prompt.New(pr, io.Discard, false).Confirm(ctx, "overwrite?")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_NonInteractiveDeclines(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("y\n"), &out, false).WithInteractive(false)

	got, err := p.Confirm(t.Context(), "overwrite?")
	require.NoError(t, err)
	assert.False(t, got)
	assert.Empty(t, out.String())

	got, err = prompt.New(strings.NewReader(""), &out, true).WithInteractive(false).Confirm(t.Context(), "overwrite?")
	require.NoError(t, err)
	assert.True(t, got, "assume yes wins over a missing terminal")
}
