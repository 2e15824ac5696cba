package dungeon

import (
	"math"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// Константы построителя коридоров
const (
	// horizontalFirstChance - с какой вероятностью коридор идет сначала
	// горизонтальным отрезком, потом вертикальным.
	horizontalFirstChance = 0.7

	// doorChance - шанс поставить дверь на выходе коридора из комнаты.
	doorChance = 0.2
)

// connectRooms связывает все комнаты жадным поиском ближайшего соседа:
// от входа помечаем достижимые комнаты и каждый раз пришиваем ту
// несвязанную, что ближе всего к любой уже связанной. Перебор пар дает
// O(n^3) на весь уровень - при <=12 комнатах это сознательная простота.
func (g *generator) connectRooms() {
	rooms := g.level.Rooms
	if len(rooms) == 0 {
		return
	}

	// 1. Точка отсчета - входная комната.
	var entranceRoom *domain.Room
	for _, room := range rooms {
		if room.Kind == domain.RoomEntrance {
			entranceRoom = room
			break
		}
	}
	if entranceRoom == nil {
		entranceRoom = rooms[0]
	}
	entranceRoom.Connected = true

	// 2. Пока есть несвязанные комнаты - ищем ближайшую пару
	// (несвязанная, связанная) и прорезаем между ними коридор.
	for {
		var closestFrom, closestTo *domain.Room
		closestDistance := math.Inf(1)

		for _, uncon := range rooms {
			if uncon.Connected {
				continue
			}
			for _, con := range rooms {
				if !con.Connected {
					continue
				}
				if d := centerDistance(uncon, con); d < closestDistance {
					closestDistance = d
					closestFrom = uncon
					closestTo = con
				}
			}
		}

		if closestFrom == nil {
			return // все комнаты связаны
		}

		g.carveCorridor(closestFrom.Center(), closestTo.Center())
		closestFrom.Connected = true
	}
}

// carveCorridor прорезает Г-образный коридор между двумя точками
// и, возможно, ставит дверь там, где коридор покидает комнату.
func (g *generator) carveCorridor(from, to domain.Position) {
	if g.rng.Float64() < horizontalFirstChance {
		// Сначала горизонталь, потом вертикаль.
		g.carveHCorridor(from.X, to.X, from.Y)
		g.carveVCorridor(from.Y, to.Y, to.X)
	} else {
		// Сначала вертикаль, потом горизонталь.
		g.carveVCorridor(from.Y, to.Y, from.X)
		g.carveHCorridor(from.X, to.X, to.Y)
	}

	if g.rng.Float64() < doorChance {
		g.placeDoorNear(from)
	}
}

func (g *generator) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.level.SetTile(x, y, domain.TileFloor)
	}
}

func (g *generator) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.level.SetTile(x, y, domain.TileFloor)
	}
}

// placeDoorNear ищет комнату, содержащую точку начала коридора,
// и ставит закрытую дверь на первую соседнюю клетку пола.
func (g *generator) placeDoorNear(p domain.Position) {
	if g.level.RoomAt(p) == nil {
		return
	}
	for _, d := range [4]domain.Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}} {
		nx, ny := p.X+d.X, p.Y+d.Y
		if g.level.TileAt(nx, ny) == domain.TileFloor {
			g.level.SetTile(nx, ny, domain.TileDoor)
			g.level.Doors = append(g.level.Doors, &domain.Door{
				Pos:   domain.Position{X: nx, Y: ny},
				State: domain.DoorClosed,
			})
			return
		}
	}
}

// centerDistance - евклидово расстояние между центрами комнат.
func centerDistance(a, b *domain.Room) float64 {
	ca, cb := a.Center(), b.Center()
	dx := float64(ca.X - cb.X)
	dy := float64(ca.Y - cb.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
