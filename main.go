package main

import (
	"flag"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/caregivers-platform/backend/cron"
	"github.com/caregivers-platform/backend/db"
	"github.com/caregivers-platform/backend/logger"
	"github.com/caregivers-platform/backend/redis"
	"github.com/caregivers-platform/backend/reports"
	"github.com/caregivers-platform/backend/routes"
	"github.com/caregivers-platform/backend/store"
)

func main() {
	migrate := flag.Bool("migrate", false, "run schema migrations and create the read view before serving")
	seed := flag.Bool("seed", false, "insert the demo dataset before serving")
	flag.Parse()

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := logger.Init(level); err != nil {
		panic(err)
	}

	db.Init()
	if *migrate {
		db.Migrate()
	}
	if *seed {
		db.Seed()
	}

	// Reminders need redis and SMTP; skip the scheduler when redis is down
	// rather than refusing to serve.
	if err := redis.Init(); err != nil {
		logger.Log.Warnw("redis unavailable, appointment reminders disabled", "error", err)
	} else {
		cron.StartReminderScheduler()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(fiberlogger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Caregivers Platform API")
	})

	s := store.New(db.GetDB())
	r := reports.New(db.GetDB())
	routes.SetupEntityRoutes(app, s)
	routes.SetupReportRoutes(app, r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		logger.Log.Fatalw("server stopped", "error", err)
	}
}
