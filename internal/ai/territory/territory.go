// Package territory estimates how much of the free space each player controls, by flood filling the grid
// from both heads at the same time: a discrete Voronoi partition of the grid under graph distance.
//
// All functions here treat the grid as a read-only snapshot.
package territory

import (
	. "github.com/janpfeifer/tronGo/internal/state"
)

// DefaultMaxIterations is the safety cap on the number of cells dequeued by one Fill. It must be at least the
// number of cells in the grid for the fill to be complete: 2000 covers the default 30x30 board with margin.
const DefaultMaxIterations = 2000

// MaxIterationsFor returns the iterations cap to use for the grid: configured if > 0, otherwise the larger of
// DefaultMaxIterations and the number of cells.
func MaxIterationsFor(grid *Grid, configured int) int {
	if configured > 0 {
		return configured
	}
	return max(DefaultMaxIterations, grid.NumCells())
}

// Claim is the result of a Fill.
type Claim struct {
	// Mine is the number of cells claimed by the first seed, including the seed itself.
	Mine int

	// Theirs is the number of cells claimed by the second seed, including the seed itself.
	Theirs int

	// Iterations is the number of cells dequeued.
	Iterations int
}

// fillOrder of neighbors: +x, -x, +y, -y. Cells equidistant to both seeds are claimed by whichever wavefront
// enqueues them first, so this order is part of the observable behavior.
var fillOrder = [NumDirections]Direction{Right, Left, Down, Up}

// fillEntry is one element in the BFS queue.
type fillEntry struct {
	pos  Pos
	mine bool
}

// Fill runs a simultaneous breadth-first search from mine and theirs.
//
// Both seeds are enqueued (mine first) and marked visited before the search starts, and the queue is
// processed in FIFO order, so both wavefronts grow one ring at a time. Each cell is claimed by the first
// wavefront to reach it. Only Empty cells are expanded into; the seeds themselves need not be empty (the
// opponent's head usually is not).
//
// Seeds outside the grid are ignored. The search stops when the queue is empty or after maxIterations
// dequeued cells.
func Fill(grid *Grid, mine, theirs Pos, maxIterations int) (claim Claim) {
	numCells := grid.NumCells()
	visited := make([]bool, numCells)
	queue := make([]fillEntry, 0, numCells+2)
	for _, seed := range []fillEntry{{mine, true}, {theirs, false}} {
		if !grid.InBounds(seed.pos) {
			continue
		}
		visited[grid.Index(seed.pos)] = true
		queue = append(queue, seed)
	}

	for head := 0; head < len(queue) && claim.Iterations < maxIterations; head++ {
		entry := queue[head]
		claim.Iterations++
		if entry.mine {
			claim.Mine++
		} else {
			claim.Theirs++
		}
		for _, dir := range fillOrder {
			next := entry.pos.Neighbor(dir)
			if !grid.IsEmpty(next) {
				continue
			}
			idx := grid.Index(next)
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, fillEntry{next, entry.mine})
		}
	}
	return
}

// Territory returns the number of cells the player at mine claims before the opponent at theirs, counting
// its own cell. So it is at least 1 for an in-bounds position, even if fully enclosed.
func Territory(grid *Grid, mine, theirs Pos, maxIterations int) int {
	return Fill(grid, mine, theirs, maxIterations).Mine
}

// OpenNeighbors returns the number (0 to 4) of orthogonal neighbors of pos that are inside the grid and empty.
func OpenNeighbors(grid *Grid, pos Pos) (count int) {
	for _, dir := range fillOrder {
		if grid.IsEmpty(pos.Neighbor(dir)) {
			count++
		}
	}
	return
}

// Reachable returns the number of empty cells reachable from pos, not counting pos itself.
func Reachable(grid *Grid, pos Pos) int {
	if !grid.InBounds(pos) {
		return 0
	}
	claim := Fill(grid, pos, Pos{-1, -1}, MaxIterationsFor(grid, 0))
	return claim.Mine - 1
}
