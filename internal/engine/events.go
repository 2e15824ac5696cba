package engine

import "github.com/JeffAllen714/Demonbane/internal/domain"

// MoveStatus - исход одного шага игрока.
type MoveStatus int

const (
	// MoveBlocked - клетка вне карты или стена, состояние не изменилось.
	MoveBlocked MoveStatus = iota
	// MoveOK - обычный шаг (включая переход по лестнице и открытие двери).
	MoveOK
	// MoveItem - на клетке лежал предмет; он снят с уровня и вложен в результат.
	MoveItem
	// MoveEnemy - на клетке враг; запись передается боевой системе как есть.
	MoveEnemy
	// MoveTrap - игрок наступил на ловушку; клетка сброшена в пол.
	MoveTrap
)

func (s MoveStatus) String() string {
	switch s {
	case MoveBlocked:
		return "blocked"
	case MoveOK:
		return "moved"
	case MoveItem:
		return "item"
	case MoveEnemy:
		return "enemy"
	case MoveTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// MoveResult - результат MovePlayer. Item заполнен только при MoveItem,
// Enemy - только при MoveEnemy.
type MoveResult struct {
	Status MoveStatus
	Item   *domain.ItemSpawn
	Enemy  *domain.EnemySpawn
}
