package systems

// Bounds is the walled ground-plane rectangle. There is no wrap; positions
// are hard-clamped after integration.
type Bounds struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// ClampX clamps an x coordinate into the bounds.
func (b Bounds) ClampX(x float32) float32 {
	return clampFloat(x, b.MinX, b.MaxX)
}

// ClampZ clamps a z coordinate into the bounds.
func (b Bounds) ClampZ(z float32) float32 {
	return clampFloat(z, b.MinZ, b.MaxZ)
}

// Neighbor holds a nearby snapshot row with precomputed spatial data.
type Neighbor struct {
	Idx    int     // index into Snapshot.Agents
	DX, DZ float32 // delta from query origin
	DistSq float32
}

// SpatialGrid provides cheap neighbor lookups over a snapshot using a
// cell-based grid. Rebuilt from the read snapshot each tick.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	bounds   Bounds
	cells    [][]int // snapshot indices per cell
}

// NewSpatialGrid creates a grid covering the given bounds.
func NewSpatialGrid(bounds Bounds, cellSize float32) *SpatialGrid {
	cols := int((bounds.MaxX-bounds.MinX)/cellSize) + 1
	rows := int((bounds.MaxZ-bounds.MinZ)/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 4)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		bounds:   bounds,
		cells:    cells,
	}
}

// Clear removes all entries from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Rebuild clears the grid and inserts every snapshot row.
func (g *SpatialGrid) Rebuild(snap *Snapshot) {
	g.Clear()
	for i, st := range snap.Agents {
		g.insert(i, st.X, st.Z)
	}
}

func (g *SpatialGrid) insert(idx int, x, z float32) {
	ci := g.cellIndex(x, z)
	g.cells[ci] = append(g.cells[ci], idx)
}

func (g *SpatialGrid) cellIndex(x, z float32) int {
	col := int((g.bounds.ClampX(x) - g.bounds.MinX) / g.cellSize)
	row := int((g.bounds.ClampZ(z) - g.bounds.MinZ) / g.cellSize)
	if col >= g.cols {
		col = g.cols - 1
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return row*g.cols + col
}

// QueryRadiusInto finds snapshot rows within radius of (x, z), excluding
// the given agent id, and appends to dst. Returns the updated slice;
// reuse dst across calls to avoid allocations.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, z, radius float32, exclude uint32, snap *Snapshot) []Neighbor {
	cellRadius := int(radius/g.cellSize) + 1

	centerCol := int((g.bounds.ClampX(x) - g.bounds.MinX) / g.cellSize)
	centerRow := int((g.bounds.ClampZ(z) - g.bounds.MinZ) / g.cellSize)

	radiusSq := radius * radius

	for dc := -cellRadius; dc <= cellRadius; dc++ {
		col := centerCol + dc
		if col < 0 || col >= g.cols {
			continue
		}
		for dr := -cellRadius; dr <= cellRadius; dr++ {
			row := centerRow + dr
			if row < 0 || row >= g.rows {
				continue
			}

			for _, idx := range g.cells[row*g.cols+col] {
				st := snap.Agents[idx]
				if st.ID == exclude {
					continue
				}

				dx := st.X - x
				dz := st.Z - z
				distSq := dx*dx + dz*dz
				if distSq <= radiusSq {
					dst = append(dst, Neighbor{Idx: idx, DX: dx, DZ: dz, DistSq: distSq})
				}
			}
		}
	}

	return dst
}
