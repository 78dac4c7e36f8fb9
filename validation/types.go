// Package validation re-checks candidate Kakuro solutions against every run
// constraint. It never trusts the solver: coverage, digit range, sum, and
// distinctness are all verified independently.
package validation

import (
	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// Result contains the outcome of validating a solution.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Summary  Summary `json:"summary"`
}

// Issue represents a single validation finding.
type Issue struct {
	Severity string         `json:"severity"` // "error" or "warning"
	Category string         `json:"category"` // "coverage", "digit", "sum", "distinct"
	Message  string         `json:"message"`
	Cells    []kakuro.Coord `json:"cells,omitempty"` // affected coordinates
}

// Summary provides an overview of the validated puzzle.
type Summary struct {
	Blanks   int `json:"blanks"`
	Runs     int `json:"runs"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Validator performs validation checks for one (board, solution) pair.
type Validator struct {
	board    *kakuro.Board
	runs     []kakuro.Run
	solution kakuro.Solution
	result   *Result
}

// NewValidator creates a validator over pre-extracted runs.
func NewValidator(board *kakuro.Board, runs []kakuro.Run, solution kakuro.Solution) *Validator {
	return &Validator{
		board:    board,
		runs:     runs,
		solution: solution,
		result: &Result{
			Valid: true,
			Summary: Summary{
				Blanks: len(board.Blanks()),
				Runs:   len(runs),
			},
		},
	}
}

// Validate runs all checks and returns the accumulated result.
// Inputs are never mutated.
func (v *Validator) Validate() *Result {
	v.checkCoverage()
	v.checkDigits()
	v.checkRuns()

	v.result.Valid = len(v.result.Errors) == 0
	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)
	return v.result
}

// Check derives the board's runs and validates the solution against them.
func Check(board *kakuro.Board, solution kakuro.Solution) (*Result, error) {
	runs, err := board.Runs()
	if err != nil {
		return nil, err
	}
	return NewValidator(board, runs, solution).Validate(), nil
}

// AddError records an error-severity issue.
func (v *Validator) AddError(category, message string, cells []kakuro.Coord) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity: "error",
		Category: category,
		Message:  message,
		Cells:    cells,
	})
}

// AddWarning records a warning-severity issue.
func (v *Validator) AddWarning(category, message string, cells []kakuro.Coord) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity: "warning",
		Category: category,
		Message:  message,
		Cells:    cells,
	})
}
