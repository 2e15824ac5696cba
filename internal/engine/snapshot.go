package engine

import (
	"fmt"

	"github.com/JeffAllen714/Demonbane/internal/domain"
	"github.com/JeffAllen714/Demonbane/pkg/logger"
)

// Snapshot - минимальный слепок состояния, который читает и пишет
// система сохранений. Сами уровни не сохраняются: мир детерминированно
// восстанавливается из сида, а модификаторы - по именам эффектов.
type Snapshot struct {
	Seed        int64           `json:"seed"`
	Epoch       int64           `json:"epoch"`
	Area        int             `json:"area"`
	PlayerPos   domain.Position `json:"playerPos"`
	PlayerLevel int             `json:"playerLevel"`
	Heat        int             `json:"heat"`

	// Modifiers - имена эффектов активных модификаторов, в порядке таблицы.
	Modifiers []string `json:"modifiers"`
}

// Snapshot снимает слепок текущего состояния менеджера.
func (m *AreaManager) Snapshot() Snapshot {
	return Snapshot{
		Seed:        m.cfg.Seed,
		Epoch:       m.epoch,
		Area:        m.Current,
		PlayerPos:   m.PlayerPos,
		PlayerLevel: m.PlayerLevel,
		Heat:        m.Heat,
		Modifiers:   m.ActiveModifiers(),
	}
}

// Restore восстанавливает менеджер из слепка: реактивирует модификаторы
// по именам, регенерирует весь мир и только потом возвращает игрока
// на сохраненную позицию.
func (m *AreaManager) Restore(s Snapshot) error {
	if s.Area < 0 || s.Area >= domain.AreaCount {
		return fmt.Errorf("snapshot has invalid area index %d", s.Area)
	}

	m.cfg.Seed = s.Seed
	// Эпоха уменьшается на единицу: GenerateWorld сразу инкрементирует
	// ее обратно, и сиды областей совпадут с сохраненными.
	m.epoch = s.Epoch - 1
	m.Heat = s.Heat

	// 1. Реактивация модификаторов. Идем по таблице, а не по сейву:
	// так активный набор гарантированно остается в порядке таблицы,
	// как бы ни был записан файл.
	saved := make(map[string]bool, len(s.Modifiers))
	for _, name := range s.Modifiers {
		if _, ok := ModifierByEffect(name); !ok {
			// Неизвестное имя не валит загрузку: вероятно, сейв от
			// другой версии таблицы.
			logger.Log.WithField("modifier", name).Warn("Unknown modifier in snapshot, skipped")
			continue
		}
		saved[name] = true
	}
	m.active = m.active[:0]
	for _, mod := range ModifierTable {
		if saved[mod.Effect] {
			m.active = append(m.active, mod)
		}
	}

	// 2. Полная регенерация мира с активными модификаторами.
	m.GenerateWorld(s.PlayerLevel)

	// 3. Воспроизведение позиции игрока.
	m.Current = s.Area
	m.PlayerPos = s.PlayerPos
	return nil
}
