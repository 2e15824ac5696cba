package engine

import (
	"math/rand"

	"github.com/JeffAllen714/Demonbane/internal/domain"
	"github.com/JeffAllen714/Demonbane/pkg/dungeon"
	"github.com/JeffAllen714/Demonbane/pkg/logger"
)

// epochSeedStep разводит сиды разных регенераций одного мастер-зерна,
// чтобы мир после роста жара не совпадал с предыдущим.
const epochSeedStep = 7919

// AreaManager владеет упорядоченным набором из семи областей, позицией
// игрока, счетчиком жара и множеством активных модификаторов.
// Единственный мутатор состояния уровней: генерация, перемещение и
// регенерация проходят только через него.
type AreaManager struct {
	cfg Config

	Areas   [domain.AreaCount]*domain.Level
	Current int

	// PlayerPos - координата игрока в текущей области.
	PlayerPos   domain.Position
	PlayerLevel int

	// Heat - накопленная эскалация сложности.
	Heat int

	// active растет монотонно и всегда отсортирован в порядке таблицы
	// модификаторов (так его и пополняет IncreaseHeat).
	active []Modifier

	// epoch - номер регенерации мира, участвует в выводе сидов областей.
	epoch int64
}

func NewAreaManager(cfg Config) *AreaManager {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	return &AreaManager{cfg: cfg}
}

// areaSeed детерминированно выводит сид области из мастер-зерна.
func (m *AreaManager) areaSeed(areaIndex int) int64 {
	return m.cfg.Seed + m.epoch*epochSeedStep + int64(areaIndex)
}

// GenerateWorld регенерирует все семь областей по порядку индексов,
// применяет к каждой свежей области активные модификаторы (в порядке
// таблицы) и возвращает игрока на вход нулевой области.
// Старые уровни заменяются целиком, вместе со своими комнатами и спавнами.
func (m *AreaManager) GenerateWorld(playerLevel int) {
	m.PlayerLevel = playerLevel
	m.epoch++

	for i := 0; i < domain.AreaCount; i++ {
		rng := rand.New(rand.NewSource(m.areaSeed(i)))
		level := dungeon.Generate(m.cfg.Width, m.cfg.Height, playerLevel, i, rng)
		ApplyModifiers(level, m.active, playerLevel, i, rng)
		m.Areas[i] = level
	}

	m.Current = 0
	m.PlayerPos = m.Areas[0].Entrance

	logger.Log.WithFields(map[string]interface{}{
		"epoch":     m.epoch,
		"heat":      m.Heat,
		"modifiers": len(m.active),
	}).Info("World regenerated")
}

// EnterArea переключает текущую область. Индекс вне [0,6] отклоняется
// без изменения состояния. Игрок появляется "там, откуда логически вышел":
// при спуске (больший индекс) и при самом первом входе - на входе области,
// при подъеме (меньший индекс) - у ее выхода.
func (m *AreaManager) EnterArea(index int) bool {
	if index < 0 || index >= domain.AreaCount {
		return false
	}

	prev := m.Current
	m.Current = index

	switch {
	case index == 0 || index > prev:
		m.PlayerPos = m.Areas[index].Entrance
	case index < prev:
		m.PlayerPos = m.Areas[index].Exit
	default:
		// Повторный вход в ту же область - оставляем игрока на входе.
		m.PlayerPos = m.Areas[index].Entrance
	}
	return true
}

// MovePlayer сдвигает игрока на единичный вектор (dx, dy).
// Стены и край карты отклоняют ход без изменения состояния; лестницы
// немедленно переключают область; в остальных случаях игрок встает на
// клетку и ядро сообщает, что он там нашел.
func (m *AreaManager) MovePlayer(dx, dy int) MoveResult {
	level := m.Areas[m.Current]
	nx, ny := m.PlayerPos.X+dx, m.PlayerPos.Y+dy

	if !level.InBounds(nx, ny) || level.TileAt(nx, ny) == domain.TileWall {
		return MoveResult{Status: MoveBlocked}
	}

	target := domain.Position{X: nx, Y: ny}
	kind := level.TileAt(nx, ny)

	switch kind {
	case domain.TileDoor:
		// Закрытую дверь открываем; клетка навсегда становится полом,
		// но сам ход в нее продолжается этим же шагом.
		if door := level.DoorAt(target); door != nil && door.State == domain.DoorClosed {
			door.State = domain.DoorOpen
			level.SetTile(nx, ny, domain.TileFloor)
		}

	case domain.TileStairsUp:
		if m.Current > 0 {
			m.EnterArea(m.Current - 1)
			return MoveResult{Status: MoveOK}
		}
		// Из нулевой области подниматься некуда - обычный шаг на клетку.

	case domain.TileStairsDown:
		if m.Current < domain.FinalArea {
			m.EnterArea(m.Current + 1)
			return MoveResult{Status: MoveOK}
		}
	}

	m.PlayerPos = target

	// 1. Предмет: подбираем (удаление предмета - обязанность ядра).
	if idx := level.ItemAt(target); idx >= 0 {
		item := level.RemoveItem(idx)
		return MoveResult{Status: MoveItem, Item: &item}
	}

	// 2. Враг: сообщаем боевой системе и оставляем его на месте.
	// Убирать врага после боя - ее обязанность, не наша.
	if enemy := level.EnemyAt(target); enemy != nil {
		return MoveResult{Status: MoveEnemy, Enemy: enemy}
	}

	// 3. Ловушка: одноразовая, клетка сбрасывается в пол.
	if kind == domain.TileTrap {
		level.SetTile(nx, ny, domain.TileFloor)
		return MoveResult{Status: MoveTrap}
	}

	return MoveResult{Status: MoveOK}
}

// IncreaseHeat повышает жар и просматривает таблицу модификаторов.
// Первый еще не активный модификатор с порогом <= нового жара
// активируется и запускает одну регенерацию мира; просмотр после этого
// прекращается. Пороги, перепрыгнутые в этом же вызове, сработают при
// следующих вызовах - не больше одного нового модификатора за вызов.
func (m *AreaManager) IncreaseHeat(amount int) {
	m.Heat += amount

	for _, def := range ModifierTable {
		if def.MinHeat > m.Heat || m.isActive(def.Effect) {
			continue
		}

		m.active = append(m.active, def)
		logger.Log.WithFields(map[string]interface{}{
			"heat":     m.Heat,
			"modifier": def.Name,
		}).Info("Heat modifier unlocked")

		m.GenerateWorld(m.PlayerLevel)
		break
	}
}

// ActiveModifiers возвращает имена эффектов активных модификаторов
// в порядке таблицы. Слайс - копия, снаружи его менять безопасно.
func (m *AreaManager) ActiveModifiers() []string {
	names := make([]string, len(m.active))
	for i, mod := range m.active {
		names[i] = mod.Effect
	}
	return names
}

// CurrentLevel возвращает уровень текущей области.
func (m *AreaManager) CurrentLevel() *domain.Level {
	return m.Areas[m.Current]
}

func (m *AreaManager) isActive(effect string) bool {
	for _, mod := range m.active {
		if mod.Effect == effect {
			return true
		}
	}
	return false
}
