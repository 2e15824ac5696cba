package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/JeffAllen714/Demonbane/internal/engine"
)

const (
	MagicHeader string = `DBSV` // 4 байта
	Version1    uint32 = 1
)

// SaveFileHeader - точное представление заголовка файла в памяти.
// binary.Write умеет писать его целиком: тут нет слайсов и строк,
// только массивы и числа.
type SaveFileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Timestamp int64   // 8 байт
	StateLen  uint32  // 4 байта
}

// SaveService пишет и читает файлы сохранений.
// Формат файла - забота этого пакета, ядро о нем не знает:
// оно отдает и принимает только engine.Snapshot.
type SaveService struct {
	SaveDir string
}

func NewSaveService(dir string) *SaveService {
	// Создаем папку, если ее нет.
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &SaveService{SaveDir: dir}
}

// Save записывает слепок в новый файл и возвращает путь к нему.
func (s *SaveService) Save(snap engine.Snapshot) (string, error) {
	now := time.Now().Unix()
	filename := fmt.Sprintf("save_%d_%d.dbsv", snap.Seed, now)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, snap, now); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, snap engine.Snapshot, timestamp int64) error {
	// Тело - JSON-слепок. Двоичный заголовок вокруг дает нам магию,
	// версию и быстрый доступ к сиду без парсинга JSON.
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	header := SaveFileHeader{
		Version:   Version1,
		Seed:      snap.Seed,
		Timestamp: timestamp,
		StateLen:  uint32(len(state)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(state); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
