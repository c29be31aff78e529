package main

import (
	"log"
	"os"

	"github.com/dhall711/health-coach/config"
	"github.com/dhall711/health-coach/routes"
	"github.com/dhall711/health-coach/services"
	"github.com/dhall711/health-coach/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, ps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(rt, ps)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
