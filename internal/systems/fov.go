// Package systems holds read-only world queries used by consumers of the
// engine (the simulation bot, renderers). Nothing here mutates the world.
package systems

import (
	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// blockers — клетки, на которых стоит ViewBlocker.
type blockers map[domain.Vec2]struct{}

func viewBlockers(w *ecs.World) blockers {
	out := make(blockers)
	for _, id := range ecs.Query[domain.ViewBlocker](w, ecs.With[domain.Position]()) {
		pos, _ := domain.PositionOf(w, id)
		out[pos] = struct{}{}
	}
	return out
}

func (b blockers) blocks(cell domain.Vec2) bool {
	_, ok := b[cell]
	return ok
}

// ComputeVisible returns the cells seen from origin within radius, using
// recursive shadowcasting over ViewBlocker entities. Blocking cells
// themselves are visible.
func ComputeVisible(w *ecs.World, origin domain.Vec2, radius int) map[domain.Vec2]bool {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
	})

	visible := make(map[domain.Vec2]bool)
	if radius <= 0 {
		fovLogger.Debug("FOV calculation skipped for blind observer (radius <= 0).")
		return visible // Слепой
	}

	// Центр всегда виден
	visible[origin] = true

	b := viewBlockers(w)
	for i := 0; i < 8; i++ {
		castLight(b, origin, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")
	return visible
}

func castLight(b blockers, c domain.Vec2, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Vec2]bool) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			cell := domain.Vec2{
				X: c.X + dx*xx + dy*xy,
				Y: c.Y + dx*yx + dy*yy,
			}
			if float64(dx*dx+dy*dy) < radiusSq {
				visible[cell] = true
			}

			// Логика теней
			if blocked {
				if b.blocks(cell) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if b.blocks(cell) && j < radius {
				blocked = true
				castLight(b, c, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// VisibleWith returns entities carrying T that stand on a visible cell, in
// query order.
func VisibleWith[T any](w *ecs.World, visible map[domain.Vec2]bool) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.Query[T](w, ecs.With[domain.Position]()) {
		pos, _ := domain.PositionOf(w, id)
		if visible[pos] {
			out = append(out, id)
		}
	}
	return out
}
