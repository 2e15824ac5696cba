package engine

import (
	"testing"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// floorLevel строит уровень с полом внутри периметра стен -
// удобная площадка для ручных сценариев перемещения.
func floorLevel(width, height int) *domain.Level {
	l := domain.NewLevel(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			l.SetTile(x, y, domain.TileFloor)
		}
	}
	return l
}

// testManager собирает менеджер со сгенерированным миром небольшого
// размера. Уровни потом можно заменять вручную.
func testManager(t *testing.T) *AreaManager {
	t.Helper()
	m := NewAreaManager(Config{Seed: 12345, Width: 40, Height: 40})
	m.GenerateWorld(1)
	return m
}

func TestMovePlayer_BlockedByWall(t *testing.T) {
	m := testManager(t)
	m.Areas[0] = floorLevel(10, 10)
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(-1, 0)
	if res.Status != MoveBlocked {
		t.Errorf("Expected blocked move into wall, got %v", res.Status)
	}
	if m.PlayerPos != (domain.Position{X: 1, Y: 1}) {
		t.Errorf("Blocked move must not change position, got %v", m.PlayerPos)
	}
}

func TestMovePlayer_BlockedAtEdge(t *testing.T) {
	m := testManager(t)
	level := domain.NewLevel(5, 5)
	level.SetTile(0, 0, domain.TileFloor)
	m.Areas[0] = level
	m.PlayerPos = domain.Position{X: 0, Y: 0}

	if res := m.MovePlayer(-1, 0); res.Status != MoveBlocked {
		t.Errorf("Expected blocked move off the map, got %v", res.Status)
	}
}

func TestMovePlayer_OpensDoorOnce(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	doorPos := domain.Position{X: 2, Y: 1}
	level.SetTile(doorPos.X, doorPos.Y, domain.TileDoor)
	level.Doors = append(level.Doors, &domain.Door{Pos: doorPos, State: domain.DoorClosed})
	m.Areas[0] = level
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveOK {
		t.Fatalf("Expected MoveOK through the door, got %v", res.Status)
	}
	if m.PlayerPos != doorPos {
		t.Errorf("Player must step onto the door cell, got %v", m.PlayerPos)
	}
	if level.TileAt(doorPos.X, doorPos.Y) != domain.TileFloor {
		t.Error("Opened door cell must become floor")
	}
	if door := level.DoorAt(doorPos); door == nil || door.State != domain.DoorOpen {
		t.Error("Door object must be marked open")
	}

	// Повторный заход на ту же клетку: обычный пол, дверь не закрывается.
	m.PlayerPos = domain.Position{X: 1, Y: 1}
	res = m.MovePlayer(1, 0)
	if res.Status != MoveOK {
		t.Errorf("Second step onto the opened door must be MoveOK, got %v", res.Status)
	}
	if level.TileAt(doorPos.X, doorPos.Y) != domain.TileFloor {
		t.Error("Opened door must stay floor")
	}
	if door := level.DoorAt(doorPos); door == nil || door.State != domain.DoorOpen {
		t.Error("Opened door must never re-close")
	}
}

func TestMovePlayer_ItemPickup(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	itemPos := domain.Position{X: 2, Y: 1}
	level.Items = append(level.Items, domain.ItemSpawn{
		Rarity: domain.ItemRare,
		Pos:    itemPos,
		Level:  3,
	})
	m.Areas[0] = level
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveItem {
		t.Fatalf("Expected MoveItem, got %v", res.Status)
	}
	if res.Item == nil || res.Item.Rarity != domain.ItemRare {
		t.Errorf("Expected picked-up rare item, got %+v", res.Item)
	}
	// Ядро само убирает подобранный предмет.
	if level.ItemAt(itemPos) >= 0 {
		t.Error("Picked-up item must be removed from the level")
	}
}

func TestMovePlayer_EnemyStaysPut(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	enemyPos := domain.Position{X: 2, Y: 1}
	level.Enemies = append(level.Enemies, domain.EnemySpawn{
		Kind:  domain.EnemyNormal,
		Pos:   enemyPos,
		Level: 2,
	})
	m.Areas[0] = level
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveEnemy {
		t.Fatalf("Expected MoveEnemy, got %v", res.Status)
	}
	if res.Enemy == nil || res.Enemy.Pos != enemyPos {
		t.Errorf("Expected enemy reference at %v, got %+v", enemyPos, res.Enemy)
	}
	// Исход боя решает боевая система: ядро врага не трогает.
	if level.EnemyAt(enemyPos) == nil {
		t.Error("Enemy must remain on the level after the encounter event")
	}
}

func TestMovePlayer_TrapFiresOnce(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	trapPos := domain.Position{X: 2, Y: 1}
	level.SetTile(trapPos.X, trapPos.Y, domain.TileTrap)
	m.Areas[0] = level
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveTrap {
		t.Fatalf("Expected MoveTrap, got %v", res.Status)
	}
	if level.TileAt(trapPos.X, trapPos.Y) != domain.TileFloor {
		t.Error("Sprung trap must reset to floor")
	}

	// Повторный заход на ту же клетку - обычный шаг.
	m.PlayerPos = domain.Position{X: 1, Y: 1}
	if res := m.MovePlayer(1, 0); res.Status != MoveOK {
		t.Errorf("Second step onto a sprung trap must be MoveOK, got %v", res.Status)
	}
}

func TestMovePlayer_StairsDescend(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	level.SetTile(2, 1, domain.TileStairsDown)
	m.Areas[0] = level
	m.Current = 0
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveOK {
		t.Fatalf("Expected MoveOK on descending, got %v", res.Status)
	}
	if m.Current != 1 {
		t.Fatalf("Expected transition to area 1, got %d", m.Current)
	}
	if m.PlayerPos != m.Areas[1].Entrance {
		t.Errorf("Descending must land on entrance of next area, got %v", m.PlayerPos)
	}
}

func TestMovePlayer_StairsAscend(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	level.SetTile(2, 1, domain.TileStairsUp)
	m.Areas[2] = level
	m.Current = 2
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	res := m.MovePlayer(1, 0)
	if res.Status != MoveOK {
		t.Fatalf("Expected MoveOK on ascending, got %v", res.Status)
	}
	if m.Current != 1 {
		t.Fatalf("Expected transition to area 1, got %d", m.Current)
	}
	// При подъеме игрок появляется у выхода области выше.
	if m.PlayerPos != m.Areas[1].Exit {
		t.Errorf("Ascending must land at exit of previous area, got %v", m.PlayerPos)
	}
}

func TestMovePlayer_StairsUpInFirstArea(t *testing.T) {
	m := testManager(t)
	level := floorLevel(10, 10)
	level.SetTile(2, 1, domain.TileStairsUp)
	m.Areas[0] = level
	m.Current = 0
	m.PlayerPos = domain.Position{X: 1, Y: 1}

	// Из нулевой области подниматься некуда - это обычный шаг.
	res := m.MovePlayer(1, 0)
	if res.Status != MoveOK {
		t.Errorf("Expected MoveOK, got %v", res.Status)
	}
	if m.Current != 0 {
		t.Errorf("Area must not change, got %d", m.Current)
	}
	if m.PlayerPos != (domain.Position{X: 2, Y: 1}) {
		t.Errorf("Player must step onto the stairs cell, got %v", m.PlayerPos)
	}
}

func TestEnterArea_InvalidIndex(t *testing.T) {
	m := testManager(t)
	before := m.Current

	if m.EnterArea(-1) {
		t.Error("Negative area index must be rejected")
	}
	if m.EnterArea(domain.AreaCount) {
		t.Error("Out-of-range area index must be rejected")
	}
	if m.Current != before {
		t.Errorf("Rejected transitions must not change current area, got %d", m.Current)
	}
}

func TestEnterArea_Placement(t *testing.T) {
	m := testManager(t)

	// Спуск: вход области.
	if !m.EnterArea(3) {
		t.Fatal("EnterArea(3) must succeed")
	}
	if m.PlayerPos != m.Areas[3].Entrance {
		t.Errorf("Descending entry must use area entrance, got %v", m.PlayerPos)
	}

	// Подъем: выход области.
	if !m.EnterArea(2) {
		t.Fatal("EnterArea(2) must succeed")
	}
	if m.PlayerPos != m.Areas[2].Exit {
		t.Errorf("Ascending entry must use area exit, got %v", m.PlayerPos)
	}

	// Возврат в нулевую область - всегда на вход.
	if !m.EnterArea(0) {
		t.Fatal("EnterArea(0) must succeed")
	}
	if m.PlayerPos != m.Areas[0].Entrance {
		t.Errorf("Entry into area 0 must use its entrance, got %v", m.PlayerPos)
	}
}

func TestGenerateWorld_ResetsPlayer(t *testing.T) {
	m := testManager(t)
	m.EnterArea(4)
	m.MovePlayer(0, 1)

	m.GenerateWorld(3)

	if m.Current != 0 {
		t.Errorf("Regeneration must reset current area to 0, got %d", m.Current)
	}
	if m.PlayerPos != m.Areas[0].Entrance {
		t.Errorf("Regeneration must place player at area 0 entrance, got %v", m.PlayerPos)
	}
	if m.PlayerLevel != 3 {
		t.Errorf("Expected player level 3, got %d", m.PlayerLevel)
	}
}

func TestGenerateWorld_DeterministicForSeed(t *testing.T) {
	a := NewAreaManager(Config{Seed: 777, Width: 40, Height: 40})
	b := NewAreaManager(Config{Seed: 777, Width: 40, Height: 40})
	a.GenerateWorld(1)
	b.GenerateWorld(1)

	for i := 0; i < domain.AreaCount; i++ {
		if a.Areas[i].Entrance != b.Areas[i].Entrance {
			t.Errorf("Area %d entrances differ: %v vs %v",
				i, a.Areas[i].Entrance, b.Areas[i].Entrance)
		}
		if len(a.Areas[i].Rooms) != len(b.Areas[i].Rooms) {
			t.Errorf("Area %d room counts differ: %d vs %d",
				i, len(a.Areas[i].Rooms), len(b.Areas[i].Rooms))
		}
	}
}

func TestGenerateWorld_EpochChangesLayout(t *testing.T) {
	m := NewAreaManager(Config{Seed: 777, Width: 40, Height: 40})
	m.GenerateWorld(1)
	first := m.Areas[0]

	m.GenerateWorld(1)
	second := m.Areas[0]

	// Разные эпохи одного сида дают разные сиды областей,
	// значит и другую планировку.
	same := true
	for y := 0; y < first.Height && same; y++ {
		for x := 0; x < first.Width; x++ {
			if first.TileAt(x, y) != second.TileAt(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Expected different layouts across epochs, grids are identical")
	}
}

func TestIncreaseHeat_UnlocksOnePerCall(t *testing.T) {
	m := testManager(t)

	// Большой скачок жара активирует только первый модификатор таблицы.
	m.IncreaseHeat(10)
	if m.Heat != 10 {
		t.Errorf("Expected heat 10, got %d", m.Heat)
	}
	mods := m.ActiveModifiers()
	if len(mods) != 1 || mods[0] != EffectIncreaseEnemies {
		t.Fatalf("Expected only %q active, got %v", EffectIncreaseEnemies, mods)
	}

	// Следующий вызов доберет следующий перепрыгнутый порог.
	m.IncreaseHeat(1)
	mods = m.ActiveModifiers()
	if len(mods) != 2 || mods[1] != EffectStrongerEnemies {
		t.Fatalf("Expected %q unlocked next, got %v", EffectStrongerEnemies, mods)
	}
}

func TestIncreaseHeat_NoUnlockBelowThreshold(t *testing.T) {
	m := testManager(t)
	entranceBefore := m.Areas[0].Entrance

	m.IncreaseHeat(0)

	if len(m.ActiveModifiers()) != 0 {
		t.Errorf("No modifier must unlock at heat 0, got %v", m.ActiveModifiers())
	}
	// Без активации мир не регенерируется.
	if m.Areas[0].Entrance != entranceBefore {
		t.Error("World must not regenerate when nothing unlocks")
	}
}

func TestIncreaseHeat_TableOrder(t *testing.T) {
	m := testManager(t)
	for i := 0; i < len(ModifierTable); i++ {
		m.IncreaseHeat(1)
	}

	mods := m.ActiveModifiers()
	if len(mods) != len(ModifierTable) {
		t.Fatalf("Expected all %d modifiers active, got %d", len(ModifierTable), len(mods))
	}
	for i, mod := range ModifierTable {
		if mods[i] != mod.Effect {
			t.Errorf("Modifier %d: expected %q, got %q", i, mod.Effect, mods[i])
		}
	}
}
