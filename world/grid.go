package world

import (
	"math"

	"github.com/BltuoBaYe/manifold/collider"
	"github.com/go-gl/mathgl/mgl64"
)

type cellKey struct {
	x, y, z int
}

// grid is a uniform hashed spatial grid used as the broadphase: each enabled
// finite body is inserted into every cell its AABB covers, and candidate
// neighbors of an object are the occupants of the cells its own AABB covers.
type grid struct {
	cellSize float64
	cells    [][]*collider.Object
	cellMask int

	// stamp-based dedup so neighbors visits each candidate once without
	// allocating per query
	seen  map[*collider.Object]uint64
	stamp uint64
}

func newGrid(cellSize float64, numCells int) *grid {
	numCells = nextPowerOfTwo(numCells)
	if cellSize <= 0 {
		cellSize = 1
	}

	return &grid{
		cellSize: cellSize,
		cells:    make([][]*collider.Object, numCells),
		cellMask: numCells - 1,
		seen:     make(map[*collider.Object]uint64),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *grid) insert(obj *collider.Object) {
	aabb := obj.AABB()
	lo := g.cellOf(aabb.Min)
	hi := g.cellOf(aabb.Max)

	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				idx := g.hashCell(cellKey{x, y, z})
				g.cells[idx] = append(g.cells[idx], obj)
			}
		}
	}
}

// neighbors calls fn once per distinct object sharing a cell with obj.
func (g *grid) neighbors(obj *collider.Object, fn func(*collider.Object)) {
	g.stamp++

	aabb := obj.AABB()
	lo := g.cellOf(aabb.Min)
	hi := g.cellOf(aabb.Max)

	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				idx := g.hashCell(cellKey{x, y, z})
				for _, other := range g.cells[idx] {
					if other == obj || g.seen[other] == g.stamp {
						continue
					}
					g.seen[other] = g.stamp
					fn(other)
				}
			}
		}
	}
}

func (g *grid) cellOf(pos mgl64.Vec3) cellKey {
	return cellKey{
		x: int(math.Floor(pos.X() / g.cellSize)),
		y: int(math.Floor(pos.Y() / g.cellSize)),
		z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *grid) hashCell(key cellKey) int {
	h := (key.x * 73856093) ^ (key.y * 19349663) ^ (key.z * 83492791)
	return h & g.cellMask
}
