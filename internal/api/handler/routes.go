package handler

import (
	"net/http"

	"github.com/tavolagroup/resto-insights-api/internal/api/handler/router"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/total-revenue",
			Method:  http.MethodGet,
			Handler: GetTotalRevenue(service),
		},
		{
			Path:    "/api/total-orders",
			Method:  http.MethodGet,
			Handler: GetTotalOrders(service),
		},
		{
			Path:    "/api/sales-trend",
			Method:  http.MethodGet,
			Handler: GetSalesTrend(service),
		},
		{
			Path:    "/api/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/api/sales-activity",
			Method:  http.MethodGet,
			Handler: GetSalesActivity(service),
		},
	}
}
