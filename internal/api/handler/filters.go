package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
	"github.com/tavolagroup/resto-insights-api/pkg/apiErrors"
	"github.com/tavolagroup/resto-insights-api/pkg/log"
	"github.com/tavolagroup/resto-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseReportFilters valida os parâmetros comuns dos endpoints de relatório
// (startDate, endDate, store, source). A validação acontece uma única vez,
// antes de qualquer agregação. Em caso de entrada inválida escreve a resposta
// 400 e retorna nil.
func parseReportFilters(w http.ResponseWriter, r *http.Request, requirePeriod bool) *domain.ReportFilters {
	logger := log.ForContext(r.Context())
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("startDate"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": query.Get("startDate"),
			"error":      err.Error(),
		}).Warn("reports: invalid startDate parameter")

		apiErrors.WriteBadRequest(w, apiErrors.MsgInvalidDateFormat)
		return nil
	}

	endDate, err := utils.ParseDate(query.Get("endDate"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": query.Get("endDate"),
			"error":    err.Error(),
		}).Warn("reports: invalid endDate parameter")

		apiErrors.WriteBadRequest(w, apiErrors.MsgInvalidDateFormat)
		return nil
	}

	period, err := domain.NewDateRange(startDate, endDate, requirePeriod)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": query.Get("startDate"),
			"end_date":   query.Get("endDate"),
			"error":      err.Error(),
		}).Warn("reports: incomplete date range")

		apiErrors.WriteBadRequest(w, err.Error())
		return nil
	}

	source, err := domain.ParseChannelSource(query.Get("source"))
	if err != nil {
		logger.WithFields(log.Fields{
			"source": query.Get("source"),
			"error":  err.Error(),
		}).Warn("reports: invalid source parameter")

		apiErrors.WriteBadRequest(w, apiErrors.MsgInvalidSource)
		return nil
	}

	return &domain.ReportFilters{
		Period: period,
		Store:  query.Get("store"),
		Source: source,
	}
}

// writeJSON serializa a resposta de sucesso
func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("reports: failed to encode response")
	}
}
