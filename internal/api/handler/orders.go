package handler

import (
	"net/http"

	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
	"github.com/tavolagroup/resto-insights-api/pkg/apiErrors"
	"github.com/tavolagroup/resto-insights-api/pkg/log"
)

// GetTotalOrders responde a contagem de pedidos por canal e combinada
func GetTotalOrders(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseReportFilters(w, r, false)
		if filters == nil {
			return
		}

		logger.WithFields(log.Fields{
			"store":  filters.Store,
			"source": string(filters.Source),
		}).Info("reports: fetching total orders")

		fact, err := service.TotalOrders(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"store":  filters.Store,
				"source": string(filters.Source),
				"error":  err.Error(),
			}).Error("reports: failed to get total orders")

			apiErrors.WriteInternalError(w, apiErrors.MsgInternalError, err.Error())
			return
		}

		writeJSON(w, r, fact)
	})
}
