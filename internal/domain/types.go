package domain

// AreaCount - количество областей мира (7 кругов ада).
const AreaCount = 7

// FinalArea - индекс последней области (Трон Сатаны, фиксированная планировка).
const FinalArea = AreaCount - 1

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TileKind - категория клетки сетки уровня.
// Числовые значения стабильны: их читает клиент рендера и система сохранений.
type TileKind int

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileStairsUp
	TileStairsDown
	TileBoss    // маркер для учета расстановки босса (не отдельный рендер-тайл)
	TileChest   // маркер сундука после босса
	TileTrap
	TileSpecial // маркер особой комнаты
)

// Walkable сообщает, учитывается ли клетка при поиске пути.
// Ловушки сюда намеренно не входят: поисковик маршрутов их обходит,
// а вот движение игрока проверяет только стены (наступить на ловушку можно).
func (t TileKind) Walkable() bool {
	switch t {
	case TileFloor, TileDoor, TileStairsUp, TileStairsDown:
		return true
	default:
		return false
	}
}

// DoorState - состояние двери.
type DoorState string

const (
	DoorClosed DoorState = "closed"
	DoorOpen   DoorState = "open"
)

// Door - интерактивный объект двери. Живет и умирает вместе со своим уровнем.
type Door struct {
	Pos   Position  `json:"pos"`
	State DoorState `json:"state"`
}

// EnemyKind - тег врага в спавн-записи.
type EnemyKind string

const (
	EnemyNormal EnemyKind = "normal"
	EnemyElite  EnemyKind = "elite"
	EnemyBoss   EnemyKind = "boss"
)

// EnemySpawn - позиционированное описание врага.
// Боевая система читает его при столкновении; ядро врагов не удаляет.
type EnemySpawn struct {
	Kind  EnemyKind `json:"kind"`
	Pos   Position  `json:"pos"`
	Level int       `json:"level"`
}

// ItemRarity - редкость предмета.
type ItemRarity string

const (
	ItemCommon    ItemRarity = "common"
	ItemUncommon  ItemRarity = "uncommon"
	ItemRare      ItemRarity = "rare"
	ItemEpic      ItemRarity = "epic"
	ItemLegendary ItemRarity = "legendary"
)

// ItemSpawn - позиционированное описание предмета, ждущего подбора.
type ItemSpawn struct {
	Rarity ItemRarity `json:"rarity"`
	Pos    Position   `json:"pos"`
	Level  int        `json:"level"` // уровень игрока на момент генерации
}

// FeatureKind - вид особого объекта в special-комнате.
type FeatureKind string

const (
	FeatureAltar    FeatureKind = "altar"
	FeatureShrine   FeatureKind = "shrine"
	FeatureFountain FeatureKind = "fountain"
	FeatureStatue   FeatureKind = "statue"
	FeatureLibrary  FeatureKind = "library"
)

// FeatureKinds - фиксированный словарь объектов, из которого выбирает генератор.
var FeatureKinds = []FeatureKind{
	FeatureAltar,
	FeatureShrine,
	FeatureFountain,
	FeatureStatue,
	FeatureLibrary,
}

// Feature - особый объект (алтарь, святилище и т.д.) с привязкой к области.
type Feature struct {
	Kind FeatureKind `json:"kind"`
	Pos  Position    `json:"pos"`
	Area int         `json:"area"`
}
