package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
	"github.com/tavolagroup/resto-insights-api/pkg/apiErrors"
	"github.com/tavolagroup/resto-insights-api/pkg/log"
)

// GetTopProducts responde os produtos mais vendidos dos dois canais,
// ordenados pela receita combinada e truncados em limit (padrão 40)
func GetTopProducts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := parseReportFilters(w, r, true)
		if filters == nil {
			return
		}

		limit := reporting.DefaultTopProductsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("limit", raw).Warn("reports: invalid limit parameter")
				apiErrors.WriteBadRequest(w, apiErrors.MsgInvalidLimit)
				return
			}
			limit = parsed
		}

		logger.WithFields(log.Fields{
			"store":      filters.Store,
			"source":     string(filters.Source),
			"start_date": filters.Period.Start.Format(time.DateOnly),
			"end_date":   filters.Period.End.Format(time.DateOnly),
		}).Info("reports: fetching top products")

		products, err := service.TopProducts(r.Context(), filters, limit)
		if err != nil {
			if errors.Is(err, reporting.ErrPeriodRequired) {
				apiErrors.WriteBadRequest(w, err.Error())
				return
			}

			logger.WithFields(log.Fields{
				"store":  filters.Store,
				"source": string(filters.Source),
				"error":  err.Error(),
			}).Error("reports: failed to get top products")

			apiErrors.WriteInternalError(w, apiErrors.MsgInternalError, err.Error())
			return
		}

		writeJSON(w, r, products)
	})
}
