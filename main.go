package main

import (
	"dresshub/app"
	"dresshub/config"
	"dresshub/routes"
	"dresshub/utils"
)

func main() {
	cfg := config.Load()

	application := app.MustNew(cfg)
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	utils.Info("listening", map[string]any{"port": cfg.Port, "env": cfg.Env})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}
