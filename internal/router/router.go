package router

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/beforeigox/beforeigo-marketing-v2/internal/handler"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/middleware"
	"github.com/beforeigox/beforeigo-marketing-v2/internal/models"
)

type Handlers struct {
	Checkout *handler.CheckoutHandler
	Catalog  *handler.CatalogHandler
	Account  *handler.AccountHandler
	Story    *handler.StoryHandler
}

type Options struct {
	CORSOrigins    []string
	RateLimitMax   int
	RateLimitRange time.Duration
	Logger         *zap.Logger
}

func New(h Handlers, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "beforeigo-api",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(middleware.CORS(opts.CORSOrigins))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Checkout. The first path is the one existing clients already call.
	checkout := []fiber.Handler{}
	if opts.RateLimitMax > 0 {
		checkout = append(checkout, limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: opts.RateLimitRange,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Too many requests"))
			},
		}))
	}
	checkout = append(checkout, h.Checkout.CreateCheckoutSession)
	app.Post("/functions/v1/create-checkout", checkout...)

	api := app.Group("/api")
	api.Post("/checkout/sessions", checkout...)
	api.Get("/catalog", h.Catalog.GetCatalog)

	auth := api.Group("/auth")
	auth.Post("/signup", h.Account.SignUp)
	auth.Post("/signin", h.Account.SignIn)
	api.Get("/users/:uid/profile", h.Account.GetProfile)

	stories := api.Group("/stories")
	stories.Get("/prompts", h.Story.GetPrompts)
	stories.Get("/", h.Story.ListStories)
	stories.Post("/", h.Story.CreateStory)
	stories.Get("/:id", h.Story.GetStory)
	stories.Put("/:id", h.Story.UpdateStory)
	stories.Delete("/:id", h.Story.DeleteStory)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = fe.Message
	}

	return c.Status(code).JSON(models.ErrorResponse(msg))
}
