package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-bank-ledger/logger"
)

// RequestLogger tags every request with a generated id and writes one access
// log entry when the handler returns.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.Log.WithFields(logrus.Fields{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		next.ServeHTTP(w, r)

		log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("Request handled")
	})
}
