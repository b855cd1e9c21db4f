/*
File    : l/iroptimizer/optimizer.go
Author  : adapted from go-mix by Akash Maji
*/

// Package iroptimizer runs optimization passes over a lowered ir.Program.
// Pass selection is driven by a Level, mirroring the pass table in the
// Rust original's optimizer.rs: None runs nothing, Basic folds
// constants, Standard adds dead-code elimination and simple inlining,
// Aggressive additionally runs the (stub) loop-shape analysis, and Size
// folds and prunes but skips inlining to avoid growing the program.
package iroptimizer

import "github.com/l-lang/l/ir"

// Level selects which passes Optimize runs.
type Level int

const (
	None Level = iota
	Basic
	Standard
	Aggressive
	Size
)

// Result carries the optimized program plus advisory output that has no
// effect on the program itself: loop-shape classifications from the
// Aggressive level's analysis-only pass.
type Result struct {
	Program *ir.Program
	Loops   []LoopHint
}

// Optimize runs the pass sequence for level against prog, returning a new
// *ir.Program for every level but None, which returns prog itself
// (passes never mutate the input in place at the top level,
// though individual passes rebuild node slices rather than deep-copying
// every leaf).
func Optimize(prog *ir.Program, level Level) (*Result, error) {
	res := &Result{Program: prog}
	if level == None {
		return res, nil
	}

	res.Program = FoldConstants(res.Program)

	switch level {
	case Basic:
		return res, nil
	case Standard:
		res.Program = EliminateDeadCode(res.Program)
		res.Program = InlineSmallFunctions(res.Program)
	case Size:
		res.Program = EliminateDeadCode(res.Program)
	case Aggressive:
		res.Program = EliminateDeadCode(res.Program)
		res.Program = InlineSmallFunctions(res.Program)
		res.Loops = AnalyzeLoopShapes(res.Program)
	}
	return res, nil
}
