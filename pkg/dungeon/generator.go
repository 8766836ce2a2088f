package dungeon

import (
	"math/rand"

	"odyssey-engine/internal/domain"
)

// Константы генерации
const (
	MaxRooms = 6
	MinSize  = 4
	MaxSize  = 8
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Layout — сетка стен и пола без сущностей.
type Layout struct {
	Width, Height int
	Rooms         []Rect
	Start         domain.Vec2
	walls         []bool
}

func (l *Layout) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return true
	}
	return l.walls[y*l.Width+x]
}

func (l *Layout) carve(x, y int) {
	l.walls[y*l.Width+x] = false
}

// FloorCells возвращает клетки пола в порядке строк.
func (l *Layout) FloorCells() []domain.Vec2 {
	var out []domain.Vec2
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if !l.IsWall(x, y) {
				out = append(out, domain.Vec2{X: x, Y: y})
			}
		}
	}
	return out
}

// Generate carves rooms joined by corridors into a solid grid. The result
// depends only on rng, so a seeded rng gives a reproducible arena. When the
// grid is too small for rooms the whole interior becomes one room.
func Generate(rng *rand.Rand, width, height int) *Layout {
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}
	// 1. Заполняем стенами
	for i := range l.walls {
		l.walls[i] = true
	}

	// 2. Генерируем комнаты
	maxSize := min(MaxSize, width-2, height-2)
	if maxSize >= MinSize {
		for i := 0; i < MaxRooms; i++ {
			w := randRange(rng, MinSize, maxSize)
			h := randRange(rng, MinSize, maxSize)
			x := randRange(rng, 0, width-w-1)
			y := randRange(rng, 0, height-h-1)

			newRoom := Rect{X: x, Y: y, W: w, H: h}
			failed := false
			for _, other := range l.Rooms {
				if newRoom.Intersects(other) {
					failed = true
					break
				}
			}
			if failed {
				continue
			}

			l.createRoom(newRoom)
			if len(l.Rooms) > 0 {
				// Соединяем с предыдущей комнатой
				prevX, prevY := l.Rooms[len(l.Rooms)-1].Center()
				currX, currY := newRoom.Center()
				if rng.Intn(2) == 0 {
					l.createHCorridor(prevX, currX, prevY)
					l.createVCorridor(prevY, currY, currX)
				} else {
					l.createVCorridor(prevY, currY, prevX)
					l.createHCorridor(prevX, currX, currY)
				}
			}
			l.Rooms = append(l.Rooms, newRoom)
		}
	}

	if len(l.Rooms) == 0 {
		whole := Rect{X: 0, Y: 0, W: width - 1, H: height - 1}
		l.createRoom(whole)
		l.Rooms = append(l.Rooms, whole)
	}

	// 3. Старт игрока — центр первой комнаты
	cx, cy := l.Rooms[0].Center()
	l.Start = domain.Vec2{X: cx, Y: cy}
	return l
}

// --- Вспомогательные функции ---

func (l *Layout) createRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			l.carve(x, y)
		}
	}
}

func (l *Layout) createHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		l.carve(x, y)
	}
}

func (l *Layout) createVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		l.carve(x, y)
	}
}

func randRange(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
