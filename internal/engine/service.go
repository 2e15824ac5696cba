package engine

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/JeffAllen714/Demonbane/internal/domain"
	"github.com/JeffAllen714/Demonbane/pkg/api"
	"github.com/JeffAllen714/Demonbane/pkg/logger"
)

// Service оборачивает AreaManager для сетевого слоя: сериализует доступ
// (менеджер однопоточный по контракту) и переводит команды клиента
// в вызовы движка, а состояние - в DTO.
type Service struct {
	mu      sync.Mutex
	Manager *AreaManager
}

// NewService создает сервис и сразу генерирует стартовый мир
// для игрока первого уровня.
func NewService(cfg Config) *Service {
	manager := NewAreaManager(cfg)
	manager.GenerateWorld(1)
	return &Service{Manager: manager}
}

// ProcessCommand - главный метод обработки ввода. Любая команда
// выполняется до конца под замком: клиент никогда не видит область
// посреди регенерации.
func (s *Service) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Action {
	case "INIT", "STATE":
		resp := s.snapshotResponse()
		resp.Type = "INIT"
		return resp

	case "MOVE":
		p, err := decode[api.DirectionPayload](cmd.Payload)
		if err != nil {
			return errorResponse(err)
		}
		res := s.Manager.MovePlayer(p.Dx, p.Dy)

		// Enemy указывает внутрь живого списка уровня - в ответ кладем
		// копию, дальше его судьбой распоряжается только движок.
		var enemy *domain.EnemySpawn
		if res.Enemy != nil {
			e := *res.Enemy
			enemy = &e
		}

		resp := s.snapshotResponse()
		resp.Event = &api.EventView{
			Kind:  res.Status.String(),
			Item:  res.Item,
			Enemy: enemy,
		}
		return resp

	case "HEAT":
		p, err := decode[api.HeatPayload](cmd.Payload)
		if err != nil {
			return errorResponse(err)
		}
		s.Manager.IncreaseHeat(p.Amount)
		return s.snapshotResponse()

	default:
		return errorResponse(fmt.Errorf("unknown action %q", cmd.Action))
	}
}

// Restore прокидывает загрузку слепка под замком сервиса.
func (s *Service) Restore(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Manager.Restore(snap)
}

// Snapshot прокидывает снятие слепка под замком сервиса.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Manager.Snapshot()
}

// snapshotResponse собирает полный снимок текущей области.
// Вызывается только под замком. Ответ не делит память с уровнем:
// writePump сериализует его в другой горутине уже после снятия замка,
// и следующая команда не должна гоняться с этой сериализацией.
func (s *Service) snapshotResponse() api.ServerResponse {
	m := s.Manager
	level := m.CurrentLevel()

	tiles := make([][]domain.TileKind, len(level.Grid))
	for y, row := range level.Grid {
		tiles[y] = append([]domain.TileKind(nil), row...)
	}
	theme := level.Theme

	rooms := make([]api.RoomView, 0, len(level.Rooms))

	resp := api.ServerResponse{
		Type:        "UPDATE",
		Area:        m.Current,
		Heat:        m.Heat,
		Modifiers:   m.ActiveModifiers(),
		Player:      m.PlayerPos,
		PlayerLevel: m.PlayerLevel,
		Grid:        &api.GridMeta{Width: level.Width, Height: level.Height},
		Tiles:       tiles,
		Enemies:     append([]domain.EnemySpawn(nil), level.Enemies...),
		Items:       append([]domain.ItemSpawn(nil), level.Items...),
		Theme:       &theme,
	}

	for _, room := range level.Rooms {
		rooms = append(rooms, api.RoomView{
			X: room.X, Y: room.Y,
			Width: room.Width, Height: room.Height,
			Kind: string(room.Kind),
		})
		resp.Features = append(resp.Features, room.Features...)
	}
	resp.Rooms = rooms

	return resp
}

func errorResponse(err error) api.ServerResponse {
	logger.Log.WithError(err).Warn("Command rejected")
	return api.ServerResponse{Type: "ERROR", Error: err.Error()}
}

// decode распаковывает тело команды и гоняет его через Validate,
// если DTO реализует api.Validator.
func decode[T any](raw json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("invalid payload format: %w", err)
	}
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("validation failed: %w", err)
		}
	}
	return payload, nil
}
