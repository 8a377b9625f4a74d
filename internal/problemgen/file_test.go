package problemgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProblems(t *testing.T) {
	raw := []byte(`[
		{"id": 1, "text": "2 + 3 = "},
		{"id": 2, "text": "4 × 5 = "}
	]`)

	problems, err := ParseProblems(raw)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, 1, problems[0].ID)
	assert.Equal(t, "4 × 5 = ", problems[1].Text)
	assert.False(t, problems[0].IsAnswered)
}

func TestParseProblems_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"not an array", `{"id": 1, "text": "2 + 3 = "}`},
		{"empty array", `[]`},
		{"missing text", `[{"id": 1}]`},
		{"missing id", `[{"text": "2 + 3 = "}]`},
		{"non-integer id", `[{"id": "one", "text": "2 + 3 = "}]`},
		{"empty text", `[{"id": 1, "text": ""}]`},
		{"extra field", `[{"id": 1, "text": "2 + 3 = ", "answer": 5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProblems([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 7, "text": "10 - 2 = "}]`), 0o644))

	problems, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, 7, problems[0].ID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
