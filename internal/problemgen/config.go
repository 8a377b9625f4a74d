package problemgen

// Range is an inclusive numeric interval.
type Range struct {
	Min int
	Max int
}

// Config controls random problem generation. It mirrors the settings
// surface of the practice form: which operators appear, how many
// operands an expression has, and what operand/result values are
// acceptable.
type Config struct {
	// Operations are the computable operators to draw from: "+", "-",
	// "*", "/". Display text renders "*" as "×" and "/" as "÷".
	Operations []string

	// OperandRange bounds each operand value.
	OperandRange Range

	// OperandCount bounds how many operands one expression contains.
	OperandCount Range

	// ResultRange bounds the ground-truth answer. Candidates outside the
	// range are regenerated.
	ResultRange Range

	// IntegerResultsOnly rejects candidates with fractional answers,
	// which keeps division problems clean for mental arithmetic.
	IntegerResultsOnly bool

	// Count is the number of problems to generate.
	Count int
}

// DefaultConfig returns a beginner-friendly addition/subtraction set.
func DefaultConfig() Config {
	return Config{
		Operations:         []string{"+", "-"},
		OperandRange:       Range{Min: 1, Max: 20},
		OperandCount:       Range{Min: 2, Max: 2},
		ResultRange:        Range{Min: 0, Max: 40},
		IntegerResultsOnly: true,
		Count:              10,
	}
}
