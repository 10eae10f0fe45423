package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "UP"}); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
