package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JeffAllen714/Demonbane/internal/engine"
)

func (s *SaveService) Load(path string) (engine.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Snapshot{}, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (engine.Snapshot, error) {
	var snap engine.Snapshot

	// 1. Читаем заголовок целиком.
	var header SaveFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return snap, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return snap, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return snap, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	// 2. Читаем и распаковываем слепок.
	state := make([]byte, header.StateLen)
	if _, err := io.ReadFull(r, state); err != nil {
		return snap, fmt.Errorf("failed to read state: %w", err)
	}
	if err := json.Unmarshal(state, &snap); err != nil {
		return snap, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snap, nil
}
