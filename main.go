package main

import (
	"Gin_postgres_rental_backoffice/app"
	"Gin_postgres_rental_backoffice/config"
	"Gin_postgres_rental_backoffice/controllers"
	"Gin_postgres_rental_backoffice/routes"
	"context"
	"log"
	"os"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	s := controllers.GetSrv(application)
	app.BootstrapFirstUser(context.Background(), application.Config, s.Repo)
	routes.RegisterRoutes(r, s, application.RDB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
