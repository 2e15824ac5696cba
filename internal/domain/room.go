package domain

import (
	"math/rand"
)

// RoomKind - назначение комнаты.
type RoomKind string

const (
	RoomNormal   RoomKind = "normal"
	RoomEntrance RoomKind = "entrance"
	RoomExit     RoomKind = "exit"
	RoomSpecial  RoomKind = "special"
	RoomBoss     RoomKind = "boss"
)

// Room - прямоугольная комната уровня.
// Комната владеет своими спавн-записями; при регенерации уровня
// она умирает вместе с ними.
type Room struct {
	X, Y          int
	Width, Height int
	Kind          RoomKind

	// Connected выставляется построителем коридоров, когда комната
	// достижима от входа.
	Connected bool

	Enemies  []EnemySpawn
	Items    []ItemSpawn
	Features []Feature
}

func NewRoom(x, y, width, height int, kind RoomKind) *Room {
	return &Room{X: x, Y: y, Width: width, Height: height, Kind: kind}
}

// Center возвращает целочисленный центр комнаты.
func (r *Room) Center() Position {
	return Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects проверяет пересечение AABB (границы включительно).
func (r *Room) Intersects(other *Room) bool {
	return r.X <= other.X+other.Width && r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height && r.Y+r.Height >= other.Y
}

// interiorCell возвращает случайную клетку строго внутри комнаты
// (никогда на границе/стене).
func (r *Room) interiorCell(rng *rand.Rand) Position {
	return Position{
		X: r.X + 1 + rng.Intn(r.Width-2),
		Y: r.Y + 1 + rng.Intn(r.Height-2),
	}
}

// PlaceEnemies расставляет врагов в комнате по сложности.
// Босс-комната получает ровно одного босса в центре.
func (r *Room) PlaceEnemies(rng *rand.Rand, playerLevel, areaIndex int) {
	if r.Kind == RoomBoss {
		r.Enemies = append(r.Enemies, EnemySpawn{
			Kind:  EnemyBoss,
			Pos:   r.Center(),
			Level: playerLevel + 2 + areaIndex,
		})
		return
	}

	// Базовое число врагов: 1 на каждые 25 клеток площади.
	roomArea := r.Width * r.Height
	baseCount := roomArea / 25
	if baseCount < 1 {
		baseCount = 1
	}

	// Модификатор сложности, зажатый в [0, 3].
	difficultyMod := playerLevel + areaIndex/2
	if difficultyMod < 0 {
		difficultyMod = 0
	}
	if difficultyMod > 3 {
		difficultyMod = 3
	}

	lo := baseCount - 1
	if lo < 0 {
		lo = 0
	}
	hi := baseCount + difficultyMod
	count := lo + rng.Intn(hi-lo+1)

	for i := 0; i < count; i++ {
		level := playerLevel + rng.Intn(3) - 1 // +/- 1 уровень
		if level < 1 {
			level = 1
		}
		r.Enemies = append(r.Enemies, EnemySpawn{
			Kind:  EnemyNormal,
			Pos:   r.interiorCell(rng),
			Level: level,
		})
	}
}

// PlaceItems разыгрывает выпадение предмета в комнате.
// После босса предмет гарантирован, в special-комнатах шанс повышен.
func (r *Room) PlaceItems(rng *rand.Rand, playerLevel int) {
	var itemChance float64
	switch r.Kind {
	case RoomBoss:
		itemChance = 1.0
	case RoomSpecial:
		itemChance = 0.6
	default:
		itemChance = 0.3
	}

	if rng.Float64() >= itemChance {
		return
	}

	r.Items = append(r.Items, ItemSpawn{
		Rarity: rollRarity(rng),
		Pos:    r.interiorCell(rng),
		Level:  playerLevel,
	})
}

// rollRarity бросает кубик редкости: 60/25/10/4/1.
func rollRarity(rng *rand.Rand) ItemRarity {
	roll := rng.Float64()
	switch {
	case roll < 0.60:
		return ItemCommon
	case roll < 0.85:
		return ItemUncommon
	case roll < 0.95:
		return ItemRare
	case roll < 0.99:
		return ItemEpic
	default:
		return ItemLegendary
	}
}

// AddFeature добавляет особый объект в центр комнаты.
// Работает только для special-комнат, для остальных - no-op.
func (r *Room) AddFeature(rng *rand.Rand, areaIndex int) {
	if r.Kind != RoomSpecial {
		return
	}
	kind := FeatureKinds[rng.Intn(len(FeatureKinds))]
	r.Features = append(r.Features, Feature{
		Kind: kind,
		Pos:  r.Center(),
		Area: areaIndex,
	})
}
