package reporting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavolagroup/resto-insights-api/infrastructure/repository"
	repomocks "github.com/tavolagroup/resto-insights-api/infrastructure/repository/mocks"
	"github.com/tavolagroup/resto-insights-api/internal/config"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (
	reporting.Reporter,
	*repomocks.MockPOSSalesRepository,
	*repomocks.MockOnlineOrdersRepository,
	*mocks.MockProductCatalog,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	posRepo := repomocks.NewMockPOSSalesRepository(ctrl)
	onlineRepo := repomocks.NewMockOnlineOrdersRepository(ctrl)
	productCatalog := mocks.NewMockProductCatalog(ctrl)

	service := reporting.NewService(&config.Config{}, posRepo, onlineRepo, productCatalog)
	return service, posRepo, onlineRepo, productCatalog
}

func makePeriod(start, end string) *domain.DateRange {
	s, _ := time.Parse(time.DateOnly, start)
	e, _ := time.Parse(time.DateOnly, end)
	return &domain.DateRange{Start: s, End: e}
}

func TestService_TotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		filters  *domain.ReportFilters
		setup    func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository)
		validate func(t *testing.T, fact *domain.RevenueFact, err error)
	}{
		{
			name:    "Ambos os canais somados - total deve ser a soma exata",
			filters: &domain.ReportFilters{Source: domain.SourceAll},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				pos.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(1250.40, nil)
				online.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(310.35, nil)
			},
			validate: func(t *testing.T, fact *domain.RevenueFact, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1250.40, fact.InStoreRevenue)
				assert.Equal(t, 310.35, fact.OnlineRevenue)
				assert.Equal(t, fact.InStoreRevenue+fact.OnlineRevenue, fact.TotalRevenue)
			},
		},
		{
			name:    "Soma de canais sem representação binária exata mantém a igualdade",
			filters: &domain.ReportFilters{Source: domain.SourceAll},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				// 0.1 + 0.2 != 0.3 em float64; o total deve ser a soma literal
				// dos canais arredondados, nunca um re-arredondamento dela
				pos.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(0.1, nil)
				online.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(0.2, nil)
			},
			validate: func(t *testing.T, fact *domain.RevenueFact, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.1, fact.InStoreRevenue)
				assert.Equal(t, 0.2, fact.OnlineRevenue)
				assert.Equal(t, fact.InStoreRevenue+fact.OnlineRevenue, fact.TotalRevenue)
			},
		},
		{
			name:    "Filtro In Store - canal online nunca é consultado e contribui com zero",
			filters: &domain.ReportFilters{Source: domain.SourceInStore},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				// Nenhuma expectativa no repositório online: qualquer chamada falha o teste
				pos.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(987.65, nil)
			},
			validate: func(t *testing.T, fact *domain.RevenueFact, err error) {
				require.NoError(t, err)
				assert.Equal(t, 987.65, fact.InStoreRevenue)
				assert.Zero(t, fact.OnlineRevenue)
				assert.Equal(t, 987.65, fact.TotalRevenue)
			},
		},
		{
			name:    "Filtro Bite - canal de loja nunca é consultado e contribui com zero",
			filters: &domain.ReportFilters{Source: domain.SourceOnline},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				online.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(432.10, nil)
			},
			validate: func(t *testing.T, fact *domain.RevenueFact, err error) {
				require.NoError(t, err)
				assert.Zero(t, fact.InStoreRevenue)
				assert.Equal(t, 432.10, fact.OnlineRevenue)
				assert.Equal(t, 432.10, fact.TotalRevenue)
			},
		},
		{
			name:    "Falha em um canal aborta a requisição inteira",
			filters: &domain.ReportFilters{Source: domain.SourceAll},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				pos.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(100.0, nil)
				online.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return(0.0, errors.New("connection refused"))
			},
			validate: func(t *testing.T, fact *domain.RevenueFact, err error) {
				require.Error(t, err)
				assert.Nil(t, fact)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, posRepo, onlineRepo, _ := newTestService(t)
			tt.setup(posRepo, onlineRepo)

			fact, err := service.TotalRevenue(context.Background(), tt.filters)
			tt.validate(t, fact, err)
		})
	}
}

func TestService_TotalRevenue_StoreMapping(t *testing.T) {
	tests := []struct {
		name          string
		store         string
		wantPOSStore  *int64
		wantOnlineKey *string
	}{
		{
			name:          "Loja conhecida vira filtro físico em cada canal",
			store:         "Hawthorn",
			wantPOSStore:  func() *int64 { v := int64(1); return &v }(),
			wantOnlineKey: func() *string { v := "hawthorn"; return &v }(),
		},
		{
			name:  "Todas as lojas - nenhum filtro de loja",
			store: domain.StoreAll,
		},
		{
			name:  "Loja desconhecida degrada para sem filtro",
			store: "Fitzroy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, posRepo, onlineRepo, _ := newTestService(t)

			posRepo.EXPECT().
				Revenue(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q repository.POSQuery) (float64, error) {
					if tt.wantPOSStore == nil {
						assert.Nil(t, q.StoreID)
					} else {
						require.NotNil(t, q.StoreID)
						assert.Equal(t, *tt.wantPOSStore, *q.StoreID)
					}
					return 0, nil
				})
			onlineRepo.EXPECT().
				Revenue(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, q repository.OnlineQuery) (float64, error) {
					if tt.wantOnlineKey == nil {
						assert.Nil(t, q.StoreKey)
					} else {
						require.NotNil(t, q.StoreKey)
						assert.Equal(t, *tt.wantOnlineKey, *q.StoreKey)
					}
					return 0, nil
				})

			_, err := service.TotalRevenue(context.Background(), &domain.ReportFilters{
				Source: domain.SourceAll,
				Store:  tt.store,
			})
			require.NoError(t, err)
		})
	}
}

func TestService_TotalOrders(t *testing.T) {
	service, posRepo, onlineRepo, _ := newTestService(t)

	posRepo.EXPECT().OrderCount(gomock.Any(), gomock.Any()).Return(37, nil)
	onlineRepo.EXPECT().OrderCount(gomock.Any(), gomock.Any()).Return(13, nil)

	fact, err := service.TotalOrders(context.Background(), &domain.ReportFilters{Source: domain.SourceAll})
	require.NoError(t, err)

	assert.Equal(t, 37, fact.InStoreOrders)
	assert.Equal(t, 13, fact.OnlineOrders)
	assert.Equal(t, 50, fact.TotalOrders)
}

func TestService_SalesTrend(t *testing.T) {
	tests := []struct {
		name     string
		filters  *domain.ReportFilters
		setup    func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository)
		validate func(t *testing.T, points []domain.TrendPoint, err error)
	}{
		{
			name: "Série completa - dias sem venda aparecem com zero",
			filters: &domain.ReportFilters{
				Source: domain.SourceAll,
				Period: makePeriod("2025-03-01", "2025-03-05"),
			},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				pos.EXPECT().DailySales(gomock.Any(), gomock.Any()).Return([]domain.DailySales{
					{Date: "2025-03-01", Sales: 120.00},
					{Date: "2025-03-03", Sales: 80.00},
				}, nil)
				online.EXPECT().DailySales(gomock.Any(), gomock.Any()).Return([]domain.DailySales{
					{Date: "2025-03-03", Sales: 20.00},
					{Date: "2025-03-05", Sales: 55.50},
				}, nil)
			},
			validate: func(t *testing.T, points []domain.TrendPoint, err error) {
				require.NoError(t, err)
				require.Len(t, points, 5)

				assert.Equal(t, []domain.TrendPoint{
					{Date: "2025-03-01", Sales: 120.00},
					{Date: "2025-03-02", Sales: 0},
					{Date: "2025-03-03", Sales: 100.00},
					{Date: "2025-03-04", Sales: 0},
					{Date: "2025-03-05", Sales: 55.50},
				}, points)
			},
		},
		{
			name: "Intervalo invertido - resultado vazio, não erro",
			filters: &domain.ReportFilters{
				Source: domain.SourceAll,
				Period: makePeriod("2025-03-10", "2025-03-05"),
			},
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository) {
				pos.EXPECT().DailySales(gomock.Any(), gomock.Any()).Return([]domain.DailySales{}, nil)
				online.EXPECT().DailySales(gomock.Any(), gomock.Any()).Return([]domain.DailySales{}, nil)
			},
			validate: func(t *testing.T, points []domain.TrendPoint, err error) {
				require.NoError(t, err)
				assert.Empty(t, points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, posRepo, onlineRepo, _ := newTestService(t)
			tt.setup(posRepo, onlineRepo)

			points, err := service.SalesTrend(context.Background(), tt.filters)
			tt.validate(t, points, err)
		})
	}
}

func TestService_SalesTrend_PeriodRequired(t *testing.T) {
	service, _, _, _ := newTestService(t)

	_, err := service.SalesTrend(context.Background(), &domain.ReportFilters{Source: domain.SourceAll})
	assert.ErrorIs(t, err, reporting.ErrPeriodRequired)
}

func TestService_TopProducts(t *testing.T) {
	storeID := int64(1)

	tests := []struct {
		name     string
		limit    int
		setup    func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository, cat *mocks.MockProductCatalog)
		validate func(t *testing.T, products []domain.ProductSale, err error)
	}{
		{
			name:  "Ordenação pela receita combinada depois da união",
			limit: 40,
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository, cat *mocks.MockProductCatalog) {
				pos.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{
					{Identifier: "101", Quantity: 10, Revenue: 240.00, StoreID: &storeID},
				}, nil)
				online.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{
					{Identifier: "Pad Thai", Quantity: 20, Revenue: 440.00},
				}, nil)
				cat.EXPECT().Lookup(storeID, int64(101)).Return(domain.CatalogItem{
					ID:        101,
					Name:      "Garlic Bread",
					SalePrice: 24.00,
					CostPrice: 6.00,
				}, true)
			},
			validate: func(t *testing.T, products []domain.ProductSale, err error) {
				require.NoError(t, err)
				require.Len(t, products, 2)

				// O produto online vende mais e deve ranquear primeiro, mesmo
				// sem existir no canal de loja
				assert.Equal(t, "Pad Thai", products[0].Name)
				assert.Equal(t, domain.SourceOnline, products[0].Source)
				assert.Nil(t, products[0].SalePrice)

				assert.Equal(t, "Garlic Bread", products[1].Name)
				assert.Equal(t, domain.SourceInStore, products[1].Source)
				assert.Equal(t, "Hawthorn", products[1].StoreName)
				require.NotNil(t, products[1].SalePrice)
				assert.Equal(t, 24.00, *products[1].SalePrice)
			},
		},
		{
			name:  "Produto fora do catálogo degrada para nome sinalizador",
			limit: 40,
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository, cat *mocks.MockProductCatalog) {
				pos.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{
					{Identifier: "999", Quantity: 3, Revenue: 90.00, StoreID: &storeID},
				}, nil)
				online.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{}, nil)
				cat.EXPECT().Lookup(storeID, int64(999)).Return(domain.CatalogItem{}, false)
			},
			validate: func(t *testing.T, products []domain.ProductSale, err error) {
				require.NoError(t, err)
				require.Len(t, products, 1)

				assert.Equal(t, "Unknown Product [999]", products[0].Name)
				assert.Nil(t, products[0].SalePrice)
				assert.Nil(t, products[0].CostPrice)
			},
		},
		{
			name:  "Truncamento nunca descarta linha de receita maior",
			limit: 2,
			setup: func(pos *repomocks.MockPOSSalesRepository, online *repomocks.MockOnlineOrdersRepository, cat *mocks.MockProductCatalog) {
				pos.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{
					{Identifier: "101", Quantity: 1, Revenue: 10.00, StoreID: &storeID},
					{Identifier: "102", Quantity: 1, Revenue: 30.00, StoreID: &storeID},
				}, nil)
				online.EXPECT().ProductSales(gomock.Any(), gomock.Any()).Return([]domain.ChannelProductSales{
					{Identifier: "Green Curry", Quantity: 1, Revenue: 50.00},
				}, nil)
				cat.EXPECT().Lookup(storeID, int64(101)).Return(domain.CatalogItem{ID: 101, Name: "A"}, true)
				cat.EXPECT().Lookup(storeID, int64(102)).Return(domain.CatalogItem{ID: 102, Name: "B"}, true)
			},
			validate: func(t *testing.T, products []domain.ProductSale, err error) {
				require.NoError(t, err)
				require.Len(t, products, 2)

				assert.Equal(t, "Green Curry", products[0].Name)
				assert.Equal(t, "B", products[1].Name)
				assert.GreaterOrEqual(t, products[0].Revenue, products[1].Revenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, posRepo, onlineRepo, productCatalog := newTestService(t)
			tt.setup(posRepo, onlineRepo, productCatalog)

			filters := &domain.ReportFilters{
				Source: domain.SourceAll,
				Period: makePeriod("2025-03-01", "2025-03-31"),
			}

			products, err := service.TopProducts(context.Background(), filters, tt.limit)
			tt.validate(t, products, err)
		})
	}
}

func TestService_SalesActivity(t *testing.T) {
	service, posRepo, onlineRepo, _ := newTestService(t)

	// A mesma célula (quarta-feira, 12h) populada pelos dois canais deve virar
	// uma única linha somada
	posRepo.EXPECT().Activity(gomock.Any(), gomock.Any()).Return([]domain.ActivityCell{
		{DayOfWeek: 3, HourOfDay: 12, TotalSales: 200.00, OrderCount: 8},
		{DayOfWeek: 5, HourOfDay: 19, TotalSales: 150.00, OrderCount: 5},
	}, nil)
	onlineRepo.EXPECT().Activity(gomock.Any(), gomock.Any()).Return([]domain.ActivityCell{
		{DayOfWeek: 3, HourOfDay: 12, TotalSales: 60.00, OrderCount: 2},
	}, nil)

	filters := &domain.ReportFilters{
		Source: domain.SourceAll,
		Period: makePeriod("2025-03-01", "2025-03-31"),
	}

	cells, err := service.SalesActivity(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, cells, 2)

	assert.Equal(t, domain.ActivityCell{DayOfWeek: 3, HourOfDay: 12, TotalSales: 260.00, OrderCount: 10}, cells[0])
	assert.Equal(t, domain.ActivityCell{DayOfWeek: 5, HourOfDay: 19, TotalSales: 150.00, OrderCount: 5}, cells[1])
}
