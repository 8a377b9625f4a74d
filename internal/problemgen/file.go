package problemgen

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cnkang/mathgenie-sub000/internal/quiz"
)

const schemaURL = "schema://problem-file.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// fileProblem is the on-disk problem shape.
type fileProblem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// LoadFile reads a JSON problem file, validates it against the problem
// file schema, and returns the raw problems (ground truths are computed
// later by the resolver, when a session starts).
func LoadFile(path string) ([]quiz.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem file: %w", err)
	}
	return ParseProblems(raw)
}

// ParseProblems validates and decodes a JSON problem document.
func ParseProblems(raw []byte) ([]quiz.Problem, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("problem file is not valid JSON: %w", err)
	}

	schema, err := fileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("problem file rejected by schema: %w", err)
	}

	var entries []fileProblem
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode problem file: %w", err)
	}

	problems := make([]quiz.Problem, len(entries))
	for i, e := range entries {
		problems[i] = quiz.Problem{ID: e.ID, Text: e.Text}
	}
	return problems, nil
}

// fileSchema compiles the problem file schema once and caches it.
func fileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, problemFileSchema); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return nil, fmt.Errorf("compile problem file schema: %w", compileErr)
	}
	return compiledSchema, nil
}
