package engine

import (
	"math/rand"

	"github.com/JeffAllen714/Demonbane/internal/domain"
	"github.com/JeffAllen714/Demonbane/pkg/dungeon"
)

// Эффекты модификаторов жара.
const (
	EffectIncreaseEnemies = "increase_enemies"
	EffectStrongerEnemies = "stronger_enemies"
	EffectLessHealth      = "less_health"
	EffectMoreTraps       = "more_traps"
	EffectLessItems       = "less_items"
	EffectEliteEnemies    = "elite_enemies"
	EffectNoHealing       = "no_healing"
	EffectTimeLimit       = "time_limit"
	EffectDoubleBosses    = "double_bosses"
	EffectExtremeMode     = "extreme_mode"
)

// Modifier - правило эскалации, открывающееся на пороге жара.
// Однажды активированный модификатор не снимается никогда.
type Modifier struct {
	Name    string
	Effect  string
	MinHeat int
}

// ModifierTable - фиксированная упорядоченная таблица модификаторов.
// Порядок = порядок применения к каждой свежей области.
//
// less_health, no_healing и time_limit для генерации прозрачны:
// ядро их только хранит, читают их боевая система и сессия.
var ModifierTable = []Modifier{
	{Name: "More Enemies", Effect: EffectIncreaseEnemies, MinHeat: 1},
	{Name: "Stronger Enemies", Effect: EffectStrongerEnemies, MinHeat: 2},
	{Name: "Less Health", Effect: EffectLessHealth, MinHeat: 3},
	{Name: "More Traps", Effect: EffectMoreTraps, MinHeat: 4},
	{Name: "Less Items", Effect: EffectLessItems, MinHeat: 5},
	{Name: "Elite Enemies", Effect: EffectEliteEnemies, MinHeat: 6},
	{Name: "No Healing", Effect: EffectNoHealing, MinHeat: 7},
	{Name: "Time Limit", Effect: EffectTimeLimit, MinHeat: 8},
	{Name: "Double Bosses", Effect: EffectDoubleBosses, MinHeat: 9},
	{Name: "Extreme Mode", Effect: EffectExtremeMode, MinHeat: 10},
}

// ModifierByEffect ищет модификатор в таблице по имени эффекта.
// Нужен системе сохранений для реактивации по списку имен.
func ModifierByEffect(effect string) (Modifier, bool) {
	for _, m := range ModifierTable {
		if m.Effect == effect {
			return m, true
		}
	}
	return Modifier{}, false
}

// ApplyModifiers применяет активные модификаторы к свежесгенерированной
// области, строго по одному разу за регенерацию. Функция вызывается
// явно из AreaManager.GenerateWorld - это и дает идемпотентность:
// уровень каждый раз новый, накопления от повторных вызовов нет.
func ApplyModifiers(level *domain.Level, active []Modifier, playerLevel, areaIndex int, rng *rand.Rand) {
	for _, mod := range active {
		switch mod.Effect {
		case EffectIncreaseEnemies:
			addExtraEnemies(level, playerLevel, rng)

		case EffectStrongerEnemies:
			for i := range level.Enemies {
				level.Enemies[i].Level += 2
			}

		case EffectMoreTraps:
			// Удвоенная плотность: два полных прохода расстановки.
			dungeon.PlaceTraps(level, areaIndex, rng)
			dungeon.PlaceTraps(level, areaIndex, rng)

		case EffectLessItems:
			removeRandomItems(level, len(level.Items)/2, rng)

		case EffectEliteEnemies:
			promoteElites(level, rng)

		case EffectDoubleBosses:
			doubleBosses(level, rng)

		case EffectExtremeMode:
			// Комбинация: ловушки x2, все враги +3, минус 75% предметов.
			dungeon.PlaceTraps(level, areaIndex, rng)
			dungeon.PlaceTraps(level, areaIndex, rng)
			for i := range level.Enemies {
				level.Enemies[i].Level += 3
			}
			removeRandomItems(level, len(level.Items)*3/4, rng)
		}
	}
}

// addExtraEnemies добавляет 50% дополнительных врагов, каждого -
// внутрь случайной комнаты, кроме входа и выхода.
func addExtraEnemies(level *domain.Level, playerLevel int, rng *rand.Rand) {
	var candidates []*domain.Room
	for _, room := range level.Rooms {
		if room.Kind != domain.RoomEntrance && room.Kind != domain.RoomExit {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return
	}

	extra := len(level.Enemies) / 2
	for i := 0; i < extra; i++ {
		room := candidates[rng.Intn(len(candidates))]
		x := room.X + 1 + rng.Intn(room.Width-2)
		y := room.Y + 1 + rng.Intn(room.Height-2)

		enemyLevel := playerLevel + rng.Intn(3) - 1
		if enemyLevel < 1 {
			enemyLevel = 1
		}
		level.Enemies = append(level.Enemies, domain.EnemySpawn{
			Kind:  domain.EnemyNormal,
			Pos:   domain.Position{X: x, Y: y},
			Level: enemyLevel,
		})
	}
}

// removeRandomItems выкидывает count случайных предметов из уровня.
func removeRandomItems(level *domain.Level, count int, rng *rand.Rand) {
	for ; count > 0 && len(level.Items) > 0; count-- {
		level.RemoveItem(rng.Intn(len(level.Items)))
	}
}

// promoteElites переводит ~25% не-боссов в элиту с +3 к уровню.
func promoteElites(level *domain.Level, rng *rand.Rand) {
	if len(level.Enemies) == 0 {
		return
	}
	promotions := len(level.Enemies) / 4
	if promotions < 1 {
		promotions = 1
	}
	for i := 0; i < promotions; i++ {
		idx := rng.Intn(len(level.Enemies))
		if level.Enemies[idx].Kind == domain.EnemyBoss {
			continue
		}
		level.Enemies[idx].Kind = domain.EnemyElite
		level.Enemies[idx].Level += 3
	}
}

// doubleBosses подселяет второго босса рядом с каждым существующим
// (смещение +/-2 по каждой оси от центра комнаты, уровень на 1 ниже).
func doubleBosses(level *domain.Level, rng *rand.Rand) {
	// Срез может расти по ходу цикла - фиксируем исходное число врагов.
	count := len(level.Enemies)

	for _, room := range level.Rooms {
		if room.Kind != domain.RoomBoss {
			continue
		}
		for i := 0; i < count; i++ {
			boss := level.Enemies[i]
			if boss.Kind != domain.EnemyBoss || !roomContains(room, boss.Pos) {
				continue
			}

			center := room.Center()
			level.Enemies = append(level.Enemies, domain.EnemySpawn{
				Kind: domain.EnemyBoss,
				Pos: domain.Position{
					X: center.X + rng.Intn(5) - 2,
					Y: center.Y + rng.Intn(5) - 2,
				},
				Level: boss.Level - 1,
			})
			break
		}
	}
}

func roomContains(room *domain.Room, pos domain.Position) bool {
	return pos.X >= room.X && pos.X <= room.X+room.Width &&
		pos.Y >= room.Y && pos.Y <= room.Y+room.Height
}
