package dungeon

import (
	"math/rand"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// Константы генерации
const (
	RoomMinSize = 5
	RoomMaxSize = 10
	MinRooms    = 8
	MaxRooms    = 12

	// MonsterChance - шанс, что в комнате вообще будут враги.
	MonsterChance = 0.8

	// placeAttempts - бюджет попыток разместить одну комнату.
	// После его исчерпания срабатывает лестница фолбэков (углы -> центр),
	// поэтому генерация завершается всегда.
	placeAttempts = 100
)

// generator держит состояние одной сборки уровня.
type generator struct {
	level       *domain.Level
	playerLevel int
	areaIndex   int
	rng         *rand.Rand
}

// Generate создает один полностью населенный связный уровень.
// Наружу никогда не падает: в патологических случаях фолбэки жертвуют
// красотой планировки ради гарантии завершения.
func Generate(width, height, playerLevel, areaIndex int, rng *rand.Rand) *domain.Level {
	g := &generator{
		level:       domain.NewLevel(width, height),
		playerLevel: playerLevel,
		areaIndex:   areaIndex,
		rng:         rng,
	}
	g.level.Theme = domain.ThemeForArea(areaIndex)

	// Финальная область собирается по фиксированной планировке.
	if areaIndex == domain.FinalArea {
		g.generateFinalArea()
		return g.level
	}

	numRooms := g.randRange(MinRooms, MaxRooms)

	// 1. Входная комната - первой.
	entranceRoom := g.addRoom(0, domain.RoomEntrance)
	g.level.Entrance = entranceRoom.Center()

	// 2. Обычные комнаты, каждая с шансом 20% стать special.
	for i := 1; i < numRooms-1; i++ {
		kind := domain.RoomNormal
		if g.rng.Float64() < 0.2 {
			kind = domain.RoomSpecial
		}
		g.addRoom(0, kind)
	}

	// 3. Выход - последним и подальше от остальных комнат.
	minDistance := max(width, height) / 3
	exitRoom := g.addRoom(minDistance, domain.RoomExit)
	g.level.Exit = exitRoom.Center()
	g.level.HasExit = true

	// 4. Соединяем все комнаты коридорами.
	g.connectRooms()

	// 5. Штампуем лестницы (поверх пола комнат).
	g.level.SetTile(g.level.Entrance.X, g.level.Entrance.Y, domain.TileStairsUp)
	g.level.SetTile(g.level.Exit.X, g.level.Exit.Y, domain.TileStairsDown)

	// 6. Собираем спавн-записи комнат в плоские списки уровня.
	g.level.Aggregate()

	return g.level
}

// addRoom размещает одну комнату. При minDistance > 0 ее центр обязан
// отстоять минимум на это расстояние от центров ВСЕХ уже стоящих комнат.
func (g *generator) addRoom(minDistance int, kind domain.RoomKind) *domain.Room {
	// Вход и выход чуть крупнее обычных комнат.
	minSize, maxSize := RoomMinSize, RoomMaxSize
	if kind == domain.RoomEntrance || kind == domain.RoomExit {
		minSize, maxSize = RoomMinSize+1, RoomMaxSize+1
	}
	width := g.randRange(minSize, maxSize)
	height := g.randRange(minSize, maxSize)

	for attempt := 0; attempt < placeAttempts; attempt++ {
		// Случайная позиция с отступом в 1 клетку от края карты.
		x := g.randRange(1, g.level.Width-width-1)
		y := g.randRange(1, g.level.Height-height-1)

		room := domain.NewRoom(x, y, width, height, kind)
		if !g.fits(room, minDistance) {
			continue
		}

		g.carveRoom(room)
		g.level.Rooms = append(g.level.Rooms, room)
		g.populate(room)
		return room
	}

	// Бюджет попыток исчерпан: пробуем четыре угла (минимальный размер,
	// проверяем только пересечения).
	size := RoomMinSize
	corners := [4]domain.Position{
		{X: 1, Y: 1},
		{X: 1, Y: g.level.Height - size - 1},
		{X: g.level.Width - size - 1, Y: 1},
		{X: g.level.Width - size - 1, Y: g.level.Height - size - 1},
	}
	for _, c := range corners {
		room := domain.NewRoom(c.X, c.Y, size, size, kind)
		if !g.fits(room, 0) {
			continue
		}
		g.carveRoom(room)
		g.level.Rooms = append(g.level.Rooms, room)
		return room
	}

	// Совсем тупик: силой ставим комнату в центр, игнорируя пересечения.
	// Завершение важнее корректности планировки.
	room := domain.NewRoom(
		g.level.Width/2-size/2, g.level.Height/2-size/2,
		size, size, kind,
	)
	g.carveRoom(room)
	g.level.Rooms = append(g.level.Rooms, room)
	return room
}

// fits проверяет пересечения и (если требуется) минимальную дистанцию
// до каждой уже размещенной комнаты.
func (g *generator) fits(room *domain.Room, minDistance int) bool {
	for _, other := range g.level.Rooms {
		if room.Intersects(other) {
			return false
		}
		if minDistance > 0 {
			if centerDistance(room, other) < float64(minDistance) {
				return false
			}
		}
	}
	return true
}

// carveRoom вырезает пол по всей площади комнаты.
func (g *generator) carveRoom(room *domain.Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.level.SetTile(x, y, domain.TileFloor)
		}
	}
}

// populate разыгрывает население комнаты. Во входной комнате врагов
// не бывает - игрок должен появляться в безопасности.
func (g *generator) populate(room *domain.Room) {
	if room.Kind == domain.RoomEntrance {
		return
	}
	if g.rng.Float64() < MonsterChance {
		room.PlaceEnemies(g.rng, g.playerLevel, g.areaIndex)
	}
	room.PlaceItems(g.rng, g.playerLevel)
	if room.Kind == domain.RoomSpecial {
		room.AddFeature(g.rng, g.areaIndex)
	}
}

// generateFinalArea собирает Трон Сатаны: большой тронный зал в центре
// и три пристройки, соединенные прямыми коридорами. Планировка и уровень
// босса фиксированы и не зависят от сида.
func (g *generator) generateFinalArea() {
	throne := domain.NewRoom(
		g.level.Width/2-5, g.level.Height/2-5,
		10, 10, domain.RoomBoss,
	)
	g.level.Rooms = append(g.level.Rooms, throne)
	g.carveRoom(throne)

	// Финальный босс значительно сильнее обычных боссов.
	throne.Enemies = append(throne.Enemies, domain.EnemySpawn{
		Kind:  domain.EnemyBoss,
		Pos:   throne.Center(),
		Level: g.playerLevel + 5,
	})

	sideRooms := []*domain.Room{
		domain.NewRoom(throne.X-8, throne.Y, 6, 6, domain.RoomSpecial),
		domain.NewRoom(throne.X+throne.Width+2, throne.Y, 6, 6, domain.RoomSpecial),
		domain.NewRoom(throne.X, throne.Y-8, 6, 6, domain.RoomEntrance),
	}

	for _, room := range sideRooms {
		g.level.Rooms = append(g.level.Rooms, room)
		g.carveRoom(room)

		if room.Kind != domain.RoomEntrance {
			room.PlaceEnemies(g.rng, g.playerLevel, g.areaIndex)
			room.PlaceItems(g.rng, g.playerLevel)
			room.AddFeature(g.rng, g.areaIndex)
		}
	}

	// Прямые коридоры от каждой пристройки к трону.
	for _, room := range sideRooms {
		g.carveCorridor(room.Center(), throne.Center())
	}

	// Вход - центр входной пристройки. Выхода у финальной области нет.
	g.level.Entrance = sideRooms[2].Center()
	g.level.SetTile(g.level.Entrance.X, g.level.Entrance.Y, domain.TileStairsUp)

	g.level.Aggregate()
}

func (g *generator) randRange(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}
