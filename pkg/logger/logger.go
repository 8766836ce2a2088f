package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Log = logrus.New()

	// 1. Устанавливаем уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Устанавливаем форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	setFormat(os.Getenv("LOG_FORMAT"))

	// 3. Устанавливаем, куда писать логи (в стандартный вывод).
	Log.SetOutput(os.Stdout)
}

// Configure применяет значения из файла конфигурации поверх Init.
// Переменные окружения LOG_LEVEL/LOG_FORMAT, если заданы, важнее файла.
// Пустые значения ничего не меняют.
func Configure(level, format string) error {
	if Log == nil {
		Init()
	}
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok && level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		Log.SetLevel(lvl)
	}
	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok && format != "" {
		setFormat(format)
	}
	return nil
}

// "json" - для продакшена и сбора логов.
// "text" - для удобной разработки.
func setFormat(format string) {
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   true,
	})
}
