package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"confgive/config"
	"confgive/database"
	"confgive/handler"
	"confgive/middleware"
	"confgive/router"
	"confgive/scheduler"
	"confgive/worker"
)

func main() {
	config.SetupEnvFile()
	config.SetupLogfile()

	settings := config.LoadPaymentSettings()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       "Confgive",
		Views:         engine,
	})

	database.ConnectDB()
	database.SetupMongoDB()

	middleware.PrometheusInit()
	handler.Init(settings)

	go worker.ProcessNotifyQueue(settings.NotifyURL)

	sweeper := scheduler.NewAttemptSweeper()
	sweeper.Start()

	router.SetupRoutes(app)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := app.Listen(":" + config.Config("PORT", "3001"))
		if err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-sigs
	log.Println("Shutting down server...")

	sweeper.Stop()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Println("Server shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
