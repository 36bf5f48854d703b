package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"
)

// RateLimit limita peticiones por IP con la instancia dada (memoria o Redis).
// Si el store falla la petición pasa: un límite caído no debe tumbar el login.
func RateLimit(instance *limiter.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, err := instance.Get(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limit: store no disponible")
			return c.Next()
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))
		if ctx.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    CodeRateLimited,
				Message: "demasiados intentos, intente más tarde",
			})
		}
		return c.Next()
	}
}

// NewLimiter construye la instancia a partir de un formato "<límite>-<periodo>" (ej. 10-M).
func NewLimiter(store limiter.Store, formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}
