// Package pathfind реализует поиск маршрута A* по сетке уровня.
// Им пользуется любой потребитель навигации: тесты связности,
// AI боевой системы, подсказки клиенту.
package pathfind

import (
	"math"
	"sort"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// directions - четыре стороны движения, диагоналей нет.
var directions = [4]domain.Position{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
}

type openNode struct {
	pos      domain.Position
	priority float64
}

// FindPath ищет маршрут между произвольными точками уровня.
// Возвращает последовательность клеток от start до goal включительно
// или nil, если точка вне карты, в стене, либо пути не существует.
//
// Эвристика - прямое евклидово расстояние. Для сетки без диагоналей она
// не дает строго оптимальных путей, но монотонна и для игровых нужд
// этого достаточно. При равных приоритетах побеждает порядок вставки.
func FindPath(level *domain.Level, start, goal domain.Position) []domain.Position {
	if !level.InBounds(start.X, start.Y) || !level.InBounds(goal.X, goal.Y) {
		return nil
	}
	if level.TileAt(start.X, start.Y) == domain.TileWall ||
		level.TileAt(goal.X, goal.Y) == domain.TileWall {
		return nil
	}

	open := []openNode{{pos: start}}
	cameFrom := make(map[domain.Position]domain.Position)
	gScore := map[domain.Position]int{start: 0}

	for len(open) > 0 {
		// Стабильная сортировка сохраняет порядок вставки при равных f.
		sort.SliceStable(open, func(i, j int) bool {
			return open[i].priority < open[j].priority
		})
		current := open[0].pos
		open = open[1:]

		if current == goal {
			return reconstruct(cameFrom, current)
		}

		for _, d := range directions {
			next := domain.Position{X: current.X + d.X, Y: current.Y + d.Y}
			if !level.InBounds(next.X, next.Y) {
				continue
			}
			if !level.TileAt(next.X, next.Y).Walkable() {
				continue
			}

			tentative := gScore[current] + 1
			if prev, seen := gScore[next]; !seen || tentative < prev {
				cameFrom[next] = current
				gScore[next] = tentative
				open = append(open, openNode{
					pos:      next,
					priority: float64(tentative) + heuristic(next, goal),
				})
			}
		}
	}

	return nil // пути нет
}

func heuristic(a, b domain.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func reconstruct(cameFrom map[domain.Position]domain.Position, current domain.Position) []domain.Position {
	path := []domain.Position{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		current = prev
		path = append(path, current)
	}
	// Разворачиваем: путь собирался от цели к старту.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
