// Package schema handles JSON import/export for Kakuro puzzles.
// It implements the exchange format shared with external collaborators
// (scraper, OCR extractor, visualizer):
//
//	{
//	  "size": [rows, cols],
//	  "cells": [
//	    {"x": 0, "y": 0, "wall": true},
//	    {"x": 1, "y": 0, "right": 4, "down": 6}
//	  ],
//	  "solution_cells": [
//	    {"x": 1, "y": 1, "value": 3}
//	  ]
//	}
//
// Cells carrying neither wall, right, nor down are implicitly blank and are
// omitted by producers. solution_cells, when present, covers exactly the
// playable coordinates.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// PuzzleCell is one wall or clue descriptor in the exchange format.
// Sums are pointers so an explicit zero can be told apart from an absent
// field and rejected rather than silently dropped.
type PuzzleCell struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Wall  bool `json:"wall,omitempty"`
	Right *int `json:"right,omitempty"`
	Down  *int `json:"down,omitempty"`
}

// SolutionCell is one solved digit in the exchange format.
type SolutionCell struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// Puzzle is the top-level exchange document.
type Puzzle struct {
	Size          [2]int         `json:"size"` // [rows, cols]
	Cells         []PuzzleCell   `json:"cells"`
	SolutionCells []SolutionCell `json:"solution_cells,omitempty"`
}

// FromJSON parses an exchange document into a board and, when
// solution_cells is present, a solution. A solution digit outside 1..9 or a
// solution coordinate occupied by a wall or clue violates the contract and
// fails.
func FromJSON(data []byte) (*kakuro.Board, kakuro.Solution, error) {
	var doc Puzzle
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromDocument(&doc)
}

func fromDocument(doc *Puzzle) (*kakuro.Board, kakuro.Solution, error) {
	rows, cols := doc.Size[0], doc.Size[1]

	descs := make([]kakuro.CellDesc, 0, len(doc.Cells))
	for _, c := range doc.Cells {
		d := kakuro.CellDesc{X: c.X, Y: c.Y, Wall: c.Wall}
		if c.Right != nil {
			if *c.Right <= 0 {
				return nil, nil, fmt.Errorf("invalid right sum %d at (%d,%d)", *c.Right, c.X, c.Y)
			}
			d.RightSum = *c.Right
		}
		if c.Down != nil {
			if *c.Down <= 0 {
				return nil, nil, fmt.Errorf("invalid down sum %d at (%d,%d)", *c.Down, c.X, c.Y)
			}
			d.DownSum = *c.Down
		}
		descs = append(descs, d)
	}

	board, err := kakuro.NewBoard(rows, cols, descs)
	if err != nil {
		return nil, nil, err
	}

	if len(doc.SolutionCells) == 0 {
		return board, nil, nil
	}

	solution := make(kakuro.Solution, len(doc.SolutionCells))
	for _, sc := range doc.SolutionCells {
		at := kakuro.Coord{X: sc.X, Y: sc.Y}
		if sc.Value < 1 || sc.Value > 9 {
			return nil, nil, fmt.Errorf("solution value %d at (%d,%d) outside 1..9", sc.Value, sc.X, sc.Y)
		}
		if kind := board.KindAt(at); kind != kakuro.Blank {
			return nil, nil, fmt.Errorf("solution cell (%d,%d) is a %s cell", sc.X, sc.Y, kind)
		}
		if _, dup := solution[at]; dup {
			return nil, nil, fmt.Errorf("duplicate solution cell (%d,%d)", sc.X, sc.Y)
		}
		solution[at] = sc.Value
	}
	return board, solution, nil
}

// ToJSON serializes a board and optional solution to the exchange format.
// Output ordering is row-major and therefore deterministic.
func ToJSON(board *kakuro.Board, solution kakuro.Solution) ([]byte, error) {
	doc := Document(board, solution)
	return json.MarshalIndent(doc, "", "  ")
}

// Document builds the exchange document without serializing it.
func Document(board *kakuro.Board, solution kakuro.Solution) *Puzzle {
	doc := &Puzzle{Size: [2]int{board.Rows, board.Cols}}

	for _, d := range board.Descriptors() {
		cell := PuzzleCell{X: d.X, Y: d.Y, Wall: d.Wall}
		if d.RightSum > 0 {
			right := d.RightSum
			cell.Right = &right
		}
		if d.DownSum > 0 {
			down := d.DownSum
			cell.Down = &down
		}
		doc.Cells = append(doc.Cells, cell)
	}

	if len(solution) > 0 {
		cells := make([]SolutionCell, 0, len(solution))
		for at, v := range solution {
			cells = append(cells, SolutionCell{X: at.X, Y: at.Y, Value: v})
		}
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].Y != cells[j].Y {
				return cells[i].Y < cells[j].Y
			}
			return cells[i].X < cells[j].X
		})
		doc.SolutionCells = cells
	}
	return doc
}
