package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// По умолчанию это логгер со стандартными настройками logrus, чтобы
// пакеты движка могли писать логи и до вызова Init (например, в тестах).
var Log = logrus.New()

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте в main.go. Уровень и формат приходят
// из конфига, но переменная окружения LOG_LEVEL имеет приоритет
// (удобно для разовой отладки без правки конфига).
func Init(levelName, format string) {
	// 1. Уровень логирования. Для отладки генератора - "debug".
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		levelName = env
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер: "json" для продакшена, текст для разработки.
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
