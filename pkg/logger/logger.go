package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер с уровнем из конфигурации
func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout)
}

func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
