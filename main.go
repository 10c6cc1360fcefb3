package main

import (
	"context"
	"fmt"
	"os"

	"tasklink/app"
	"tasklink/config"
	"tasklink/config/appconf"
	"tasklink/internal/mongoconn"
	"tasklink/internal/validator"
	"tasklink/version"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "tasklink",
		Usage:   "Task record service backed by MongoDB",
		Version: version.Version,
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Println(version.Version)
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve()
		},
	}
}

func serve() error {
	if appconf.Debug() {
		log.SetLevel(log.DebugLevel)
	}

	mongoURL := appconf.MongoURL()
	if mongoURL == "" {
		return fmt.Errorf("TL_MONGODB_URL is required")
	}

	client, err := mongoconn.GetConn(
		mongoconn.WithURL(mongoURL),
	)
	if err != nil {
		return fmt.Errorf("mongodb connection failed: %w", err)
	}

	defer mongoconn.Close()

	container := app.NewContainer(client.Database(appconf.MongoDatabase()))

	e := echo.New()
	e.Validator = validator.New()
	if appconf.Debug() {
		e.Logger.SetLevel(gommonlog.DEBUG)
	} else {
		e.Logger.SetLevel(gommonlog.INFO)
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return "req_" + ulid.Make().String()
		},
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	config.AddRoutes(e, container)

	log.WithFields(log.Fields{
		"port":     appconf.Port(),
		"database": appconf.MongoDatabase(),
	}).Info("starting tasklink server")

	return e.Start(fmt.Sprintf(":%s", appconf.Port()))
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
