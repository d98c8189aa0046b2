// Package trace runs a grid headlessly for a fixed number of generations.
//
// A [Runner] drives [life.Grid.Update] in a loop, feeding every generation to
// registered [Metric] and [Observer] values, and returns a [Result] with the
// population history. It backs the trace command and exercises the engine
// without a terminal.
package trace
