package api

import (
	"encoding/json"

	"github.com/JeffAllen714/Demonbane/internal/domain"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - общий конверт команды от клиента.
type ClientCommand struct {
	// Action - имя команды: INIT, MOVE, HEAT, STATE.
	Action string `json:"action"`

	// Payload - сырое тело команды, распаковывается по Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DirectionPayload - единичный шаг. Ровно одна из осей должна быть
// ненулевой: диагоналей в подземелье нет.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// HeatPayload - дискретное намерение "поднять сложность".
type HeatPayload struct {
	Amount int `json:"amount"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// GridMeta содержит размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// RoomView - DTO комнаты для тематической раскраски на клиенте.
type RoomView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	Kind   string `json:"kind"`
}

// EventView описывает, что произошло на последнем шаге.
type EventView struct {
	// Kind: moved, blocked, item, enemy, trap.
	Kind string `json:"kind"`

	// Item заполнен при kind=item (подобранный предмет уже снят с уровня).
	Item *domain.ItemSpawn `json:"item,omitempty"`

	// Enemy заполнен при kind=enemy. Враг остается на уровне:
	// его судьбу решает боевая система.
	Enemy *domain.EnemySpawn `json:"enemy,omitempty"`
}

// ServerResponse - полный снимок текущей области, видимой клиенту.
// Сервер шлет его после каждой обработанной команды.
type ServerResponse struct {
	// Type - тип сообщения: INIT, UPDATE или ERROR.
	Type string `json:"type"`

	Area        int             `json:"area"`
	Heat        int             `json:"heat"`
	Modifiers   []string        `json:"modifiers,omitempty"`
	Player      domain.Position `json:"player"`
	PlayerLevel int             `json:"playerLevel"`

	Grid  *GridMeta           `json:"grid,omitempty"`
	Tiles [][]domain.TileKind `json:"tiles,omitempty"`

	Rooms    []RoomView          `json:"rooms,omitempty"`
	Enemies  []domain.EnemySpawn `json:"enemies,omitempty"`
	Items    []domain.ItemSpawn  `json:"items,omitempty"`
	Features []domain.Feature    `json:"features,omitempty"`

	// Theme - непрозрачное для ядра описание оформления области.
	Theme *domain.Theme `json:"theme,omitempty"`

	Event *EventView `json:"event,omitempty"`
	Error string     `json:"error,omitempty"`
}
