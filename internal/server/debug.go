package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/JeffAllen714/Demonbane/internal/domain"
	"github.com/JeffAllen714/Demonbane/internal/engine"
	"github.com/JeffAllen714/Demonbane/pkg/pathfind"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/areas", h.handleListAreas)
	mux.HandleFunc("/debug/map", h.handleDumpMap)
	mux.HandleFunc("/debug/path", h.handlePath)
	mux.HandleFunc("/debug/state", h.handleState)
}

// /debug/areas - сводка по всем семи областям.
func (h *DebugHandler) handleListAreas(w http.ResponseWriter, r *http.Request) {
	type AreaSummary struct {
		Area       int    `json:"area"`
		Theme      string `json:"theme"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RoomCount  int    `json:"room_count"`
		EnemyCount int    `json:"enemy_count"`
		ItemCount  int    `json:"item_count"`
		DoorCount  int    `json:"door_count"`
	}

	var summary []AreaSummary
	for i, level := range h.Service.Manager.Areas {
		if level == nil {
			continue
		}
		summary = append(summary, AreaSummary{
			Area:       i,
			Theme:      level.Theme.Name,
			Width:      level.Width,
			Height:     level.Height,
			RoomCount:  len(level.Rooms),
			EnemyCount: len(level.Enemies),
			ItemCount:  len(level.Items),
			DoorCount:  len(level.Doors),
		})
	}

	writeJSON(w, summary)
}

// /debug/map?area=3 - ASCII-дамп сетки области. Незаменим при отладке
// генератора: видно комнаты, коридоры, двери и лестницы.
func (h *DebugHandler) handleDumpMap(w http.ResponseWriter, r *http.Request) {
	areaIdx := h.Service.Manager.Current
	if areaStr := r.URL.Query().Get("area"); areaStr != "" {
		fmt.Sscanf(areaStr, "%d", &areaIdx)
	}

	if areaIdx < 0 || areaIdx >= domain.AreaCount {
		http.Error(w, "area index out of range", http.StatusBadRequest)
		return
	}
	level := h.Service.Manager.Areas[areaIdx]
	if level == nil {
		http.Error(w, "area not generated", http.StatusNotFound)
		return
	}

	glyphs := map[domain.TileKind]byte{
		domain.TileWall:       '#',
		domain.TileFloor:      '.',
		domain.TileDoor:       '+',
		domain.TileStairsUp:   '<',
		domain.TileStairsDown: '>',
		domain.TileTrap:       '^',
	}

	var sb strings.Builder
	player := h.Service.Manager.PlayerPos
	onCurrent := areaIdx == h.Service.Manager.Current

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			if onCurrent && player.X == x && player.Y == y {
				sb.WriteByte('@')
				continue
			}
			g, ok := glyphs[level.Grid[y][x]]
			if !ok {
				g = '?'
			}
			sb.WriteByte(g)
		}
		sb.WriteByte('\n')
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(sb.String()))
}

// /debug/path?x=30&y=15 - маршрут от игрока до указанной клетки текущей
// области. Быстрая проверка проходимости карты без клиента.
func (h *DebugHandler) handlePath(w http.ResponseWriter, r *http.Request) {
	var goal domain.Position
	if _, err := fmt.Sscanf(r.URL.Query().Get("x"), "%d", &goal.X); err != nil {
		http.Error(w, "bad x", http.StatusBadRequest)
		return
	}
	if _, err := fmt.Sscanf(r.URL.Query().Get("y"), "%d", &goal.Y); err != nil {
		http.Error(w, "bad y", http.StatusBadRequest)
		return
	}

	level := h.Service.Manager.CurrentLevel()
	path := pathfind.FindPath(level, h.Service.Manager.PlayerPos, goal)
	if path == nil {
		http.Error(w, "no path", http.StatusNotFound)
		return
	}
	writeJSON(w, path)
}

// /debug/state - слепок состояния менеджера (то же, что уходит в сейв).
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
