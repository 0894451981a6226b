package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cell is an integer voxel coordinate.
type Cell [3]int

// Box is an inclusive range of cells.
type Box struct {
	Min Cell `yaml:"min"`
	Max Cell `yaml:"max"`
}

// Layout describes a level: a square floor one cell thick plus solid boxes.
type Layout struct {
	FloorY          int   `yaml:"floor_y"`
	FloorHalfExtent int   `yaml:"floor_half_extent"`
	Boxes           []Box `yaml:"boxes"`
}

// Grid is a sparse set of solid unit voxels. It implements physics.BlockStore.
type Grid struct {
	solid map[Cell]struct{}
}

func NewGrid() *Grid {
	return &Grid{solid: make(map[Cell]struct{})}
}

func (g *Grid) IsSolid(x, y, z int) bool {
	if g == nil {
		return false
	}
	_, ok := g.solid[Cell{x, y, z}]
	return ok
}

func (g *Grid) Set(c Cell, solid bool) {
	if solid {
		g.solid[c] = struct{}{}
		return
	}
	delete(g.solid, c)
}

func (g *Grid) Fill(b Box) {
	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for y := b.Min[1]; y <= b.Max[1]; y++ {
			for z := b.Min[2]; z <= b.Max[2]; z++ {
				g.solid[Cell{x, y, z}] = struct{}{}
			}
		}
	}
}

func (g *Grid) Len() int {
	return len(g.solid)
}

// Each calls fn for every solid cell in unspecified order.
func (g *Grid) Each(fn func(c Cell)) {
	for c := range g.solid {
		fn(c)
	}
}

// Validate rejects boxes whose max corner lies below their min corner.
func (l Layout) Validate() error {
	if l.FloorHalfExtent < 0 {
		return fmt.Errorf("floor_half_extent must be >= 0, got %d", l.FloorHalfExtent)
	}
	for i, b := range l.Boxes {
		for axis := 0; axis < 3; axis++ {
			if b.Max[axis] < b.Min[axis] {
				return fmt.Errorf("invalid box %d: max %v below min %v", i, b.Max, b.Min)
			}
		}
	}
	return nil
}

// Build materializes the layout into a grid.
func Build(l Layout) (*Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid()
	if l.FloorHalfExtent > 0 {
		n := l.FloorHalfExtent
		g.Fill(Box{Min: Cell{-n, l.FloorY, -n}, Max: Cell{n, l.FloorY, n}})
	}
	for _, b := range l.Boxes {
		g.Fill(b)
	}
	return g, nil
}

// LoadLayout reads a standalone layout file.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return Layout{}, fmt.Errorf("layout path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, l.Validate()
}
