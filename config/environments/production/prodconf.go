// Package production contains production configuration of the app
package production

import (
	"os"
	"strings"

	"tasklink/config"
)

type prodconf struct{}

func New() config.AppConfiger {
	return prodconf{}
}

func (pc prodconf) GetPort() string {
	appPort := os.Getenv("TL_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

// GetMongoURL has no fallback. The caller decides whether a missing
// URL is fatal.
func (pc prodconf) GetMongoURL() string {
	return strings.TrimSpace(os.Getenv("TL_MONGODB_URL"))
}

func (pc prodconf) GetMongoDatabase() string {
	database := os.Getenv("TL_MONGODB_DATABASE")
	if strings.TrimSpace(database) == "" {
		database = "tasklink"
	}
	return database
}
