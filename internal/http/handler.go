package http

import (
	"fmt"
	"strings"
	"time"

	"checkers/internal/core"
	"checkers/internal/processor"
	"checkers/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const (
	requestsPerSecond = 10
	gameIDParam       = "gameId"
	bodyKey           = "validatedBody"
)

// API binds the processor to fiber routes
type API struct {
	proc *processor.Processor
	svc  *service.Service
}

// NewFiberApp builds the application with middleware and all routes under
// /api/v1. devMode doubles the per-IP rate limit.
func NewFiberApp(proc *processor.Processor, svc *service.Service, devMode bool) *fiber.App {
	api := &API{proc: proc, svc: svc}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	app.Get("/health", api.health)

	limit := requestsPerSecond
	if devMode {
		limit *= 2
	}

	v1 := app.Group("/api/v1", rateLimiter(limit), requireJSON)
	v1.Post("/games", bind[core.CreateGameRequest], api.createGame)

	games := v1.Group("/games/:"+gameIDParam, requireGameID)
	games.Get("", api.getGame)
	games.Delete("", api.deleteGame)
	games.Post("/moves", bind[core.MoveRequest], api.makeMove)
	games.Get("/board", api.getBoard)

	return app
}

// rateLimiter limits requests per client IP, preferring the first
// X-Forwarded-For hop when present
func rateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			if xff := c.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				return strings.TrimSpace(first)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fail(c, fiber.StatusTooManyRequests, core.ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    core.ErrRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", max),
			})
		},
	})
}

// requireJSON rejects POST bodies that are not declared as JSON
func requireJSON(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Next()
	}
	if ct := c.Get(fiber.HeaderContentType); ct != "" && !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		return fail(c, fiber.StatusUnsupportedMediaType, core.ErrorResponse{
			Error:   "unsupported media type",
			Code:    core.ErrInvalidContent,
			Details: "Content-Type must be application/json",
		})
	}
	return c.Next()
}

func requireGameID(c *fiber.Ctx) error {
	if !isValidUUID(c.Params(gameIDParam)) {
		return fail(c, fiber.StatusBadRequest, core.ErrorResponse{
			Error:   "invalid game ID format",
			Code:    core.ErrInvalidRequest,
			Details: "game ID must be a valid UUID",
		})
	}
	return c.Next()
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	body := core.ErrorResponse{
		Error: "internal server error",
		Code:  core.ErrInternalError,
	}

	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
		body.Error = fe.Message
		switch status {
		case fiber.StatusNotFound:
			body.Code = core.ErrGameNotFound
		case fiber.StatusBadRequest:
			body.Code = core.ErrInvalidRequest
		case fiber.StatusTooManyRequests:
			body.Code = core.ErrRateLimitExceeded
		}
	}
	return fail(c, status, body)
}

func fail(c *fiber.Ctx, status int, body core.ErrorResponse) error {
	return c.Status(status).JSON(body)
}

// statusFor maps processor error codes to HTTP status codes
func statusFor(code string) int {
	switch code {
	case core.ErrGameNotFound:
		return fiber.StatusNotFound
	case core.ErrNoLegalMoves, core.ErrGameOver:
		return fiber.StatusConflict
	case core.ErrResourceLimit:
		return fiber.StatusServiceUnavailable
	case core.ErrInternalError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// reply writes a processor response, using status on success
func reply(c *fiber.Ctx, resp processor.ProcessorResponse, status int) error {
	if !resp.Success {
		return fail(c, statusFor(resp.Error.Code), *resp.Error)
	}
	if resp.Data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(resp.Data)
}

func (a *API) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Unix(),
		"games":  a.svc.GameCount(),
	})
}

func (a *API) createGame(c *fiber.Ctx) error {
	req := c.Locals(bodyKey).(*core.CreateGameRequest)
	return reply(c, a.proc.Execute(processor.NewCreateGameCommand(*req)), fiber.StatusCreated)
}

func (a *API) getGame(c *fiber.Ctx) error {
	return reply(c, a.proc.Execute(processor.NewGetGameCommand(c.Params(gameIDParam))), fiber.StatusOK)
}

// makeMove submits a human move or triggers the computer seat
func (a *API) makeMove(c *fiber.Ctx) error {
	req := c.Locals(bodyKey).(*core.MoveRequest)
	return reply(c, a.proc.Execute(processor.NewMakeMoveCommand(c.Params(gameIDParam), *req)), fiber.StatusOK)
}

func (a *API) deleteGame(c *fiber.Ctx) error {
	return reply(c, a.proc.Execute(processor.NewDeleteGameCommand(c.Params(gameIDParam))), fiber.StatusNoContent)
}

func (a *API) getBoard(c *fiber.Ctx) error {
	return reply(c, a.proc.Execute(processor.NewGetBoardCommand(c.Params(gameIDParam))), fiber.StatusOK)
}
