package render

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Versifine/stride/internal/world"
)

// Edge is a world-space line segment.
type Edge [2]mgl64.Vec3

type edgeKey [6]int

// BuildEdges turns the level into line segments: a unit grid on top of the
// floor plus the outline of every other solid cell. Shared cube edges are
// emitted once.
func BuildEdges(l world.Layout, g *world.Grid) []Edge {
	seen := make(map[edgeKey]struct{})
	var edges []Edge
	add := func(a, b [3]int) {
		if b[0] < a[0] || (b[0] == a[0] && (b[1] < a[1] || (b[1] == a[1] && b[2] < a[2]))) {
			a, b = b, a
		}
		k := edgeKey{a[0], a[1], a[2], b[0], b[1], b[2]}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		edges = append(edges, Edge{
			{float64(a[0]), float64(a[1]), float64(a[2])},
			{float64(b[0]), float64(b[1]), float64(b[2])},
		})
	}

	if n := l.FloorHalfExtent; n > 0 {
		top := l.FloorY + 1
		for i := -n; i <= n+1; i++ {
			add([3]int{i, top, -n}, [3]int{i, top, n + 1})
			add([3]int{-n, top, i}, [3]int{n + 1, top, i})
		}
	}

	var cells []world.Cell
	g.Each(func(c world.Cell) {
		if l.FloorHalfExtent > 0 && c[1] == l.FloorY {
			return
		}
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	for _, c := range cells {
		x, y, z := c[0], c[1], c[2]
		for _, d := range [2]int{0, 1} {
			for _, e := range [2]int{0, 1} {
				add([3]int{x, y + d, z + e}, [3]int{x + 1, y + d, z + e})
				add([3]int{x + d, y, z + e}, [3]int{x + d, y + 1, z + e})
				add([3]int{x + d, y + e, z}, [3]int{x + d, y + e, z + 1})
			}
		}
	}
	return edges
}

// viewport projects world-space segments to screen pixels.
type viewport struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	near   float64
	width  int
	height int
}

func newViewport(view mgl64.Mat4, fovDeg float64, width, height int) viewport {
	const near, far = 0.05, 200.0
	aspect := float64(width) / float64(height)
	return viewport{
		view:   view,
		proj:   mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, near, far),
		near:   near,
		width:  width,
		height: height,
	}
}

// segment clips e against the near plane and returns its screen endpoints
// with y pointing down. ok is false when e lies entirely behind the camera.
func (v viewport) segment(e Edge) (p, q mgl64.Vec2, ok bool) {
	a := v.view.Mul4x1(e[0].Vec4(1)).Vec3()
	b := v.view.Mul4x1(e[1].Vec4(1)).Vec3()
	limit := -v.near
	aBehind, bBehind := a.Z() > limit, b.Z() > limit
	switch {
	case aBehind && bBehind:
		return p, q, false
	case aBehind:
		a = clipNear(b, a, limit)
	case bBehind:
		b = clipNear(a, b, limit)
	}
	return v.toScreen(a), v.toScreen(b), true
}

func clipNear(in, out mgl64.Vec3, z float64) mgl64.Vec3 {
	t := (z - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

func (v viewport) toScreen(p mgl64.Vec3) mgl64.Vec2 {
	win := mgl64.Project(p, mgl64.Ident4(), v.proj, 0, 0, v.width, v.height)
	return mgl64.Vec2{win.X(), float64(v.height) - win.Y()}
}
