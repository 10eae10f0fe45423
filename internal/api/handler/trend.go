package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
	"github.com/tavolagroup/resto-insights-api/pkg/apiErrors"
	"github.com/tavolagroup/resto-insights-api/pkg/log"
)

// GetSalesTrend responde a linha de tendência diária. Este endpoint exige o
// par de datas incondicionalmente.
func GetSalesTrend(service reporting.Reporter) http.Handler {
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
		}).Info("reports: fetching sales trend")

		points, err := service.SalesTrend(r.Context(), filters)
		if err != nil {
			if errors.Is(err, reporting.ErrPeriodRequired) {
				apiErrors.WriteBadRequest(w, err.Error())
				return
			}

			logger.WithFields(log.Fields{
				"store":  filters.Store,
				"source": string(filters.Source),
				"error":  err.Error(),
			}).Error("reports: failed to get sales trend")

			apiErrors.WriteInternalError(w, apiErrors.MsgInternalError, err.Error())
			return
		}

		writeJSON(w, r, points)
	})
}
