package notes

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"1. Introduction to Optics", true},
		{"6. Summary of everything we covered in this rather long chapter today", true},
		{"7. Not a heading because seven is outside the range", false},
		{"Key Formulas:", true},
		{"CORE CONCEPTS", true},
		{"SNELL'S LAW (N1 SIN A = N2 SIN B)", true},
		{"Core Concepts", false},
		{"12345", false},
		{strings.Repeat("A", 59), true},
		{strings.Repeat("A", 60), false},
		{strings.Repeat("a", 58) + ":", true},
		{strings.Repeat("a", 59) + ":", false},
		{"The refractive index is defined as the ratio of speeds.", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsHeading(tt.line), tt.line)
	}
}

func TestParse(t *testing.T) {
	text := "# Ray Optics\n\n**Key Formulas:**\n- Mirror formula: 1/f = 1/v + 1/u\n\nLight bends *towards* the normal in a *denser* medium.\nTIPS\n   \n## Summary\nDone."

	d := Parse("Ray Optics", text, day)
	require.Len(t, d.Blocks, 7)

	assert.Equal(t, Block{Kind: Heading, Text: "Ray Optics", Runs: []Run{{Text: "Ray Optics"}}}, d.Blocks[0])
	assert.Equal(t, Heading, d.Blocks[1].Kind)
	assert.Equal(t, "Key Formulas:", d.Blocks[1].Text)

	assert.Equal(t, Body, d.Blocks[2].Kind)
	assert.Equal(t, "• Mirror formula: 1/f = 1/v + 1/u", d.Blocks[2].Text)

	assert.Equal(t, []Run{
		{Text: "Light bends "},
		{Text: "towards", Italic: true},
		{Text: " the normal in a "},
		{Text: "denser", Italic: true},
		{Text: " medium."},
	}, d.Blocks[3].Runs)
	assert.Equal(t, "Light bends towards the normal in a denser medium.", d.Blocks[3].Text)

	assert.Equal(t, Heading, d.Blocks[4].Kind)
	assert.Equal(t, "Summary", d.Blocks[5].Text)
	assert.Equal(t, Heading, d.Blocks[5].Kind)
	assert.Equal(t, Body, d.Blocks[6].Kind)
}

func TestParse_Empty(t *testing.T) {
	d := Parse("x", "\n  \n**\n", day)
	assert.Empty(t, d.Blocks)
	assert.Equal(t, "JEE Study Notes: x", d.Title())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Newton_s_Laws_of_Motion_JEE_notes_20250307.pdf", Filename("Newton's Laws of Motion", day))
	assert.Equal(t, "a-b_c_JEE_notes_20250307.pdf", Filename("a-b_c", day))
	assert.Equal(t, "_nergie_JEE_notes_20250307.pdf", Filename("Énergie", day))
}

func TestWritePDF(t *testing.T) {
	d := Parse("Work, Energy & Power", "KEY FORMULAS\nW = F · d cos θ\nUse *conservation* of energy.\n"+strings.Repeat("Long paragraph text. ", 400), day)

	var buf bytes.Buffer
	require.NoError(t, d.WritePDF(&buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := Parse("Optics", "Core Concepts:\nLight.", day)

	path, err := d.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Optics_JEE_notes_20250307.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
