package domain

import "fmt"

// Vec2 — целочисленная координата клетки на сетке.
type Vec2 struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Orthogonal directions in clockwise order starting north. Candidate
// generators enumerate in this order, so it is part of AI tie-breaking.
var (
	DirUp    = Vec2{X: 0, Y: -1}
	DirRight = Vec2{X: 1, Y: 0}
	DirDown  = Vec2{X: 0, Y: 1}
	DirLeft  = Vec2{X: -1, Y: 0}

	OrthogonalDirs = []Vec2{DirUp, DirRight, DirDown, DirLeft}

	// AllDirs includes diagonals, clockwise from north.
	AllDirs = []Vec2{
		DirUp, {X: 1, Y: -1}, DirRight, {X: 1, Y: 1},
		DirDown, {X: -1, Y: 1}, DirLeft, {X: -1, Y: -1},
	}
)

// Add возвращает новую позицию со смещением.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both axes by k.
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Manhattan возвращает манхэттенское расстояние до другой клетки.
func (v Vec2) Manhattan(o Vec2) int {
	return abs(v.X-o.X) + abs(v.Y-o.Y)
}

// IsAdjacent возвращает true, если клетка соседняя (включая диагональ).
func (v Vec2) IsAdjacent(o Vec2) bool {
	dx, dy := abs(v.X-o.X), abs(v.Y-o.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
