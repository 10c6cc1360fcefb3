// Package development contains development configuration of the app
package development

import (
	"os"
	"strings"

	"tasklink/config"
)

type devconf struct{}

func New() config.AppConfiger {
	return devconf{}
}

func (dc devconf) GetPort() string {
	appPort := os.Getenv("TL_APP_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

// GetMongoURL has no fallback. The caller decides whether a missing
// URL is fatal.
func (dc devconf) GetMongoURL() string {
	return strings.TrimSpace(os.Getenv("TL_MONGODB_URL"))
}

func (dc devconf) GetMongoDatabase() string {
	database := os.Getenv("TL_MONGODB_DATABASE")
	if strings.TrimSpace(database) == "" {
		database = "tasklink_dev"
	}
	return database
}
