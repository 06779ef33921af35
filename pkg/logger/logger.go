package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del servicio.
type Config struct {
	App   string    // nombre del servicio, viaja como campo fijo en cada línea
	Env   string    // development -> consola legible; cualquier otro -> JSON
	Level string    // trace, debug, info, warn, error (por defecto info)
	Out   io.Writer // destino de escritura; por defecto os.Stdout
}

// Logger expone la API de zerolog con el contexto del servicio ya aplicado.
type Logger struct {
	zerolog.Logger
}

// New crea el logger estructurado del servicio y lo instala además como
// logger global de zerolog para las librerías que lo usen.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("service", cfg.App)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{Logger: zl}
}
