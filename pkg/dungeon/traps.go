package dungeon

import (
	"math/rand"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// trapAttempts - бюджет попыток найти место под одну ловушку.
const trapAttempts = 50

// PlaceTraps выполняет один полный проход расстановки ловушек:
// 2 + areaIndex штук. Кандидат - случайная клетка пола, не вход, не выход
// и не занятая врагом или предметом. Если за trapAttempts попыток место
// не нашлось, эта ловушка просто пропускается.
func PlaceTraps(level *domain.Level, areaIndex int, rng *rand.Rand) {
	numTraps := 2 + areaIndex

	for i := 0; i < numTraps; i++ {
		for attempt := 0; attempt < trapAttempts; attempt++ {
			x := rng.Intn(level.Width-2) + 1
			y := rng.Intn(level.Height-2) + 1

			if level.TileAt(x, y) != domain.TileFloor {
				continue
			}

			pos := domain.Position{X: x, Y: y}
			if pos == level.Entrance {
				continue
			}
			if level.HasExit && pos == level.Exit {
				continue
			}
			if level.EnemyAt(pos) != nil {
				continue
			}
			if level.ItemAt(pos) >= 0 {
				continue
			}

			level.SetTile(x, y, domain.TileTrap)
			break
		}
	}
}
