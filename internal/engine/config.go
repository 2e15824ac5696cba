package engine

import "time"

// Размеры области по умолчанию.
const (
	DefaultWidth  = 50
	DefaultHeight = 50
)

// Config хранит параметры запуска движка.
type Config struct {
	// Seed - мастер-зерно. От него детерминированно выводятся сиды
	// всех областей: Area N Seed = MasterSeed + эпоха*шаг + N.
	Seed int64

	// Width, Height - размер сетки каждой области.
	Width  int
	Height int
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}
