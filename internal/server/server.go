// Package server exposes the assistant as a local JSON API for browser
// front-ends.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/assistant"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/dispatch"
	"github.com/Raviisinghh-stack/Fico-implementation/internal/logging"
)

// Assistant is the part of assistant.Service the handlers need.
type Assistant interface {
	Configured() bool
	Ask(ctx context.Context, intent dispatch.Intent, query string) (*dispatch.Answer, error)
	AnalyzeFSD(ctx context.Context, fileText, pasted string) (*dispatch.Answer, error)
	Speak(ctx context.Context, text string) ([]byte, error)
}

type Options struct {
	Addr           string
	RequestTimeout time.Duration
	// AudioTTL bounds how long synthesized audio stays downloadable.
	AudioTTL    time.Duration
	CORSOrigins string
	Logger      *zap.Logger
}

type Server struct {
	app    *fiber.App
	addr   string
	logger *zap.Logger
}

func New(svc Assistant, opts Options) *Server {
	logger := logging.OrNop(opts.Logger).Named("server")
	if opts.AudioTTL <= 0 {
		opts.AudioTTL = 15 * time.Minute
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "fico",
		BodyLimit:             10 * 1024 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(requestLogger(logger))

	h := &handler{
		svc:     svc,
		audio:   newAudioStore(opts.AudioTTL),
		timeout: opts.RequestTimeout,
		logger:  logger,
	}
	app.Get("/healthz", h.Health)
	h.RegisterRoutes(app.Group("/api"))

	return &Server{app: app, addr: opts.Addr, logger: logger}
}

// App returns the underlying fiber app, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.addr))
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = statusFor(err)
			}
		}
		logger.Info("request",
			zap.String("id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch assistant.Classify(err) {
	case assistant.KindValidation:
		return fiber.StatusBadRequest
	case assistant.KindConfiguration:
		return fiber.StatusServiceUnavailable
	case assistant.KindOffTopic:
		return fiber.StatusUnprocessableEntity
	case assistant.KindTransport, assistant.KindNoAudio:
		return fiber.StatusBadGateway
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fiber.StatusGatewayTimeout
	}
	return fiber.StatusInternalServerError
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message})
		}

		code := statusFor(err)
		kind := assistant.Classify(err)
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.Path()), zap.Stringer("kind", kind), zap.Error(err))
		}
		return c.Status(code).JSON(errorResponse{
			Error: assistant.Message(err),
			Kind:  kind.String(),
		})
	}
}
