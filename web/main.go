package main

import (
	"context"
	"encoding/base64"
	"log"

	"dmfengineering.com/timesheet/ai/suggest"
	"dmfengineering.com/timesheet/core"
	"dmfengineering.com/timesheet/infrastructure/devops"
	"dmfengineering.com/timesheet/web/common"
	"dmfengineering.com/timesheet/web/handlers/budget"
	"dmfengineering.com/timesheet/web/handlers/catalog"
	"dmfengineering.com/timesheet/web/handlers/notification"
	suggesthandler "dmfengineering.com/timesheet/web/handlers/suggest"
	"dmfengineering.com/timesheet/web/handlers/timeentry"
	"dmfengineering.com/timesheet/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadConfiguration(ctx)
	if err != nil {
		log.Fatal(err)
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	dm, err := core.New(cfg.Dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	base := common.Handler{
		Dm: dm,
		Notifier: core.NewNotifier(dm, core.NotifierConfig{
			EmailFrom:      cfg.NotifyEmailFrom,
			SlackChannelID: cfg.SlackChannelID,
		}),
	}
	suggestService := suggest.NewService(ctx)

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	protected.Use(middlewares.RequireEmployee(dm))

	admin := protected.Group("")
	admin.Use(middlewares.RequireAdmin())

	{
		catalog.Register(protected, base)
		timeentry.Register(protected, admin, base)
		notification.Register(protected, base)
		suggesthandler.Register(protected, base, suggestService)
		budget.Register(admin, base)
	}

	r.Run(":8090")
}
