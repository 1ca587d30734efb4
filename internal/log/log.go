package log

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetOutput redirects the structured log, e.g. to a MultiWriter with a file sink.
func SetOutput(w io.Writer) {
	base = zerolog.New(w).With().Timestamp().Logger()
}

func write(ev *zerolog.Event, c *fiber.Ctx, action string, fields map[string]any) {
	if c != nil {
		ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev.Str("req_id", rid)
		}
	}
	if len(fields) > 0 {
		ev.Fields(fields)
	}
	ev.Msg(action)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write(base.Info(), c, action, fields) }

// Audit marks state-changing actions worth keeping a trail of.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(base.Info().Str("kind", "audit"), c, action, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(base.Warn(), c, action, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(base.Error().Err(err), c, action, fields)
}
