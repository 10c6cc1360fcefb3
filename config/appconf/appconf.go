// Package appconf contains app related configurations
package appconf

import (
	"os"
	"strconv"

	"tasklink/config"
	devconf "tasklink/config/environments/development"
	prodconf "tasklink/config/environments/production"
)

var appconf config.AppConfiger

func Port() string {
	return appconf.GetPort()
}

func MongoURL() string {
	return appconf.GetMongoURL()
}

func MongoDatabase() string {
	return appconf.GetMongoDatabase()
}

// Debug reports whether verbose logging was requested via DEBUG.
func Debug() bool {
	debug, err := strconv.ParseBool(os.Getenv("DEBUG"))
	if err != nil {
		return false
	}
	return debug
}

func init() {
	env := os.Getenv("APP_ENV")

	switch env {
	case "production":
		appconf = prodconf.New()
	case "development":
		appconf = devconf.New()
	default:
		appconf = devconf.New()
	}
}
