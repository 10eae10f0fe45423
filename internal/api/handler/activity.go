package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
	"github.com/tavolagroup/resto-insights-api/pkg/apiErrors"
	"github.com/tavolagroup/resto-insights-api/pkg/log"
)

// GetSalesActivity responde o mapa de calor (dia da semana, hora) combinado
// dos dois canais
func GetSalesActivity(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseReportFilters(w, r, true)
		if filters == nil {
			return
		}

		logger.WithFields(log.Fields{
			"store":      filters.Store,
			"source":     string(filters.Source),
			"start_date": filters.Period.Start.Format(time.DateOnly),
			"end_date":   filters.Period.End.Format(time.DateOnly),
		}).Info("reports: fetching sales activity")

		cells, err := service.SalesActivity(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrPeriodRequired) {
				apiErrors.WriteBadRequest(w, err.Error())
				return
			}

			logger.WithFields(log.Fields{
				"store":  filters.Store,
				"source": string(filters.Source),
				"error":  err.Error(),
			}).Error("reports: failed to get sales activity")

			apiErrors.WriteInternalError(w, apiErrors.MsgInternalError, err.Error())
			return
		}

		writeJSON(w, r, cells)
	})
}
