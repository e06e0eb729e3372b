package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fleetra/site/cache"
	"github.com/fleetra/site/config"
	"github.com/fleetra/site/content"
	"github.com/fleetra/site/db"
	"github.com/fleetra/site/email"
	h "github.com/fleetra/site/handlers"
	"github.com/fleetra/site/notification"
	"github.com/fleetra/site/redis"
	"github.com/fleetra/site/sheet"
	"github.com/fleetra/site/sms"
	"github.com/fleetra/site/store"
	"github.com/fleetra/site/submission"
)

// pageCacheMaxCost bounds the rendered page cache, in bytes.
const pageCacheMaxCost = 32 << 20

// shutdownTimeout bounds how long in-flight requests get after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Site copy is embedded; a parse failure is a build problem.
	if err := content.Init(); err != nil {
		log.Fatalf("error loading site content: %v", err)
	}

	// The submission log is optional. The relay keeps working without it.
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Printf("[RELAY] Submission log disabled: %v", err)
	} else {
		defer db.Close()
	}

	pages, err := cache.New(func(b []byte) int64 { return int64(len(b)) }, "Page Cache", pageCacheMaxCost)
	if err != nil {
		log.Fatalf("Failed to initialize page cache: %v", err)
	}
	defer pages.Close()
	h.SetPageCache(pages)

	relay := newRelay()
	if !relay.Ready() {
		log.Printf("[RELAY] Form relay is not fully configured; submissions will fail")
	}
	h.SetRelay(relay)

	// Rate limits stay per process unless Redis is configured.
	var limiterStorage fiber.Storage
	if rs, err := redis.NewStorage(ctx); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			log.Printf("[redis] Falling back to in-memory rate limits: %v", err)
		}
	} else {
		defer rs.Close()
		rs.StartHealthCheck(ctx)
		limiterStorage = rs
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerBodyLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(h.GlobalRateLimiter(limiterStorage))

	// Add logger middleware
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", "./static")
	app.Get("/js/polyfills/:name", h.HandlePolyfill)
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Marketing pages
	app.Get("/", h.CompatMiddleware, h.HandleHome)
	app.Get("/features", h.CompatMiddleware, h.HandleFeatures)
	app.Get("/about", h.CompatMiddleware, h.HandleAbout)
	app.Get("/contact", h.CompatMiddleware, h.HandleContact)
	app.Get("/survey", h.CompatMiddleware, h.HandleSurvey)
	app.Get("/investors", h.CompatMiddleware, h.HandleInvestors)
	app.Get("/beta", h.CompatMiddleware, h.HandleBeta)

	// Legal pages
	app.Get("/terms", h.CompatMiddleware, h.HandleTermsOfService)
	app.Get("/privacy", h.CompatMiddleware, h.HandlePrivacyPolicy)

	// API group
	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: strings.Join(config.Origins(), ","),
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	api.Post("/submit-form", h.SubmitRateLimiter(limiterStorage), h.HandleSubmitForm)
	api.Post("/client-error", h.HandleClientError)

	// Admin dashboard
	admin := app.Group("/admin", h.AdminAuth)
	admin.Get("/", h.HandleAdmin)
	admin.Post("/cache/clear", h.HandleClearPageCache)

	// Sitemap
	app.Get("/sitemap.xml", h.HandleSitemap)

	// Health check
	app.Get("/health", h.HandleHealth)

	ln, err := net.Listen("tcp", ":"+config.ServerPort)
	if err != nil {
		log.Printf("Failed to listen on port %s: %v", config.ServerPort, err)
		return
	}
	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	if err := serve(ctx, app, ln); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

// serve runs app on ln until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, app *fiber.App, ln net.Listener) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Printf("Shutting down server...")
		done <- app.ShutdownWithTimeout(shutdownTimeout)
	}()

	if err := app.Listener(ln); err != nil {
		return err
	}
	return <-done
}

// newRelay wires whichever downstream clients are configured. Unconfigured
// clients stay nil interfaces so Ready reports them.
func newRelay() *submission.Service {
	var appender submission.Appender
	if c, err := sheet.NewClient(); err != nil {
		log.Printf("[SHEET] Spreadsheet relay disabled: %v", err)
	} else {
		appender = c
	}

	var notifier submission.Notifier
	if n, err := newNotifier(); err != nil {
		log.Printf("[EMAIL] Email notifications disabled: %v", err)
	} else {
		notifier = n
	}

	relay := submission.NewService(appender, notifier)
	if db.Ready() {
		relay.WithRecorder(store.Log{})
	}
	return relay
}

func newNotifier() (*notification.NotificationService, error) {
	mail, err := email.NewEmailService()
	if err != nil {
		return nil, err
	}
	n, err := notification.NewNotificationService(mail, config.NotifyEmail)
	if err != nil {
		return nil, err
	}
	if s, err := sms.NewSMSService(); err != nil {
		log.Printf("[SMS] SMS alerts disabled: %v", err)
	} else {
		n.WithSMS(s, config.NotifyPhone)
	}
	return n, nil
}
