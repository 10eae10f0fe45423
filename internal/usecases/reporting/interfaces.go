package reporting

import (
	"context"

	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

// ProductCatalog resolve ids numéricos de produto do PDV para nome e preços.
// O snapshot por trás da interface é somente leitura.
type ProductCatalog interface {
	// Lookup resolve um produto pelo par (loja física do PDV, id do produto)
	Lookup(storeID int64, productID int64) (domain.CatalogItem, bool)
}

// Reporter é a interface do reconciliador de vendas: combina os agregados
// calculados de forma independente pelos dois canais em totais consistentes.
type Reporter interface {
	// TotalRevenue retorna a receita por canal e combinada no período
	TotalRevenue(ctx context.Context, filters *domain.ReportFilters) (*domain.RevenueFact, error)

	// TotalOrders retorna a contagem de pedidos por canal e combinada no período
	TotalOrders(ctx context.Context, filters *domain.ReportFilters) (*domain.OrderCountFact, error)

	// SalesTrend retorna um ponto por dia de calendário do período, inclusive
	// dias sem nenhuma venda
	SalesTrend(ctx context.Context, filters *domain.ReportFilters) ([]domain.TrendPoint, error)

	// TopProducts retorna os produtos mais vendidos dos dois canais, ordenados
	// pela receita combinada e truncados em limit
	TopProducts(ctx context.Context, filters *domain.ReportFilters, limit int) ([]domain.ProductSale, error)

	// SalesActivity retorna o mapa de calor (dia da semana, hora) combinado
	SalesActivity(ctx context.Context, filters *domain.ReportFilters) ([]domain.ActivityCell, error)
}
