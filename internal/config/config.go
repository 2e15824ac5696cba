package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config - конфигурация сервера, читается из TOML-файла.
// Отсутствующий файл - не ошибка: берутся значения по умолчанию,
// чтобы сервер поднимался одной командой без подготовки.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Port    string `toml:"port"`
	SaveDir string `toml:"save_dir"`
}

type GameConfig struct {
	// MapWidth, MapHeight - размер сетки каждой области.
	MapWidth  int `toml:"map_width"`
	MapHeight int `toml:"map_height"`

	// Seed - мастер-зерно мира. 0 означает "случайное при старте".
	Seed int64 `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text или json
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    "8080",
			SaveDir: "saves",
		},
		Game: GameConfig{
			MapWidth:  50,
			MapHeight: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load читает конфиг из файла поверх значений по умолчанию.
// Пустой путь или отсутствующий файл возвращают Default без ошибки.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.MapWidth < 30 || c.Game.MapHeight < 30 {
		// Финальная планировка (тронный зал + пристройки) физически
		// не помещается на картах меньше этого.
		return fmt.Errorf("map size %dx%d is too small, need at least 30x30",
			c.Game.MapWidth, c.Game.MapHeight)
	}
	return nil
}
