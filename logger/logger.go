// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Packages log through it with
// logger.Log.WithFields(...) so every entry carries structured context.
var Log = logrus.New()

// Init configures the shared logger. It must be called once at startup,
// before any other package writes a log entry.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
