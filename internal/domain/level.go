package domain

// Level - один полностью сгенерированный уровень (область мира).
// Создается генератором целиком и целиком же заменяется при регенерации,
// частичных правок не бывает.
type Level struct {
	Width  int
	Height int

	// Grid[y][x] - тип клетки. До любой "резьбы" вся сетка - стены.
	Grid [][]TileKind

	Rooms []*Room
	Doors []*Door

	// Entrance и Exit - клетки лестниц. У финальной области выхода нет,
	// HasExit тогда false.
	Entrance Position
	Exit     Position
	HasExit  bool

	// Агрегированные списки по всем комнатам. Предметы ядро убирает при
	// подборе; врагов после боя убирает боевая система, не ядро.
	Enemies []EnemySpawn
	Items   []ItemSpawn

	// Theme - косметическое описание области; ядро его не интерпретирует,
	// оно целиком уходит рендеру.
	Theme Theme
}

// NewLevel создает уровень, полностью залитый стенами.
func NewLevel(width, height int) *Level {
	grid := make([][]TileKind, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]TileKind, width) // TileWall - нулевое значение
	}
	return &Level{Width: width, Height: height, Grid: grid}
}

// InBounds проверяет, что координата внутри сетки.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// TileAt возвращает тип клетки. За пределами сетки - стена.
func (l *Level) TileAt(x, y int) TileKind {
	if !l.InBounds(x, y) {
		return TileWall
	}
	return l.Grid[y][x]
}

// SetTile записывает тип клетки, молча игнорируя выход за границы.
func (l *Level) SetTile(x, y int, kind TileKind) {
	if l.InBounds(x, y) {
		l.Grid[y][x] = kind
	}
}

// DoorAt находит объект двери на клетке (или nil).
func (l *Level) DoorAt(pos Position) *Door {
	for _, d := range l.Doors {
		if d.Pos == pos {
			return d
		}
	}
	return nil
}

// ItemAt находит индекс предмета на клетке (-1, если пусто).
func (l *Level) ItemAt(pos Position) int {
	for i, item := range l.Items {
		if item.Pos == pos {
			return i
		}
	}
	return -1
}

// RemoveItem убирает предмет по индексу и возвращает его.
func (l *Level) RemoveItem(idx int) ItemSpawn {
	item := l.Items[idx]
	l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
	return item
}

// EnemyAt находит врага на клетке (или nil). Возвращается указатель
// в агрегированный список: боевая система может менять запись на месте.
func (l *Level) EnemyAt(pos Position) *EnemySpawn {
	for i := range l.Enemies {
		if l.Enemies[i].Pos == pos {
			return &l.Enemies[i]
		}
	}
	return nil
}

// Aggregate собирает спавн-записи всех комнат в плоские списки уровня.
// Вызывается генератором один раз в конце сборки.
func (l *Level) Aggregate() {
	l.Enemies = l.Enemies[:0]
	l.Items = l.Items[:0]
	for _, room := range l.Rooms {
		l.Enemies = append(l.Enemies, room.Enemies...)
		l.Items = append(l.Items, room.Items...)
	}
}

// RoomAt возвращает первую комнату, содержащую точку (или nil).
// Границы считаются частью комнаты, как и в Intersects.
func (l *Level) RoomAt(pos Position) *Room {
	for _, room := range l.Rooms {
		if pos.X >= room.X && pos.X <= room.X+room.Width &&
			pos.Y >= room.Y && pos.Y <= room.Y+room.Height {
			return room
		}
	}
	return nil
}
