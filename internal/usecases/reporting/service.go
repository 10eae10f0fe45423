package reporting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tavolagroup/resto-insights-api/infrastructure/repository"
	"github.com/tavolagroup/resto-insights-api/internal/config"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
	"github.com/tavolagroup/resto-insights-api/pkg/utils"
)

// DefaultTopProductsLimit é o truncamento padrão do relatório de produtos
const DefaultTopProductsLimit = 40

// Service reconcilia os agregados dos dois canais de venda. Cada canal é
// consultado de forma independente e somente quando o filtro de origem o
// inclui: um canal suprimido nunca chega a ser consultado, e sua contribuição
// é estruturalmente zero.
type Service struct {
	cfg        *config.Config
	posRepo    repository.POSSalesRepository
	onlineRepo repository.OnlineOrdersRepository
	catalog    ProductCatalog
}

// NewService cria uma nova instância do reconciliador de relatórios
func NewService(
	cfg *config.Config,
	posRepo repository.POSSalesRepository,
	onlineRepo repository.OnlineOrdersRepository,
	catalog ProductCatalog,
) Reporter {
	return &Service{
		cfg:        cfg,
		posRepo:    posRepo,
		onlineRepo: onlineRepo,
		catalog:    catalog,
	}
}

// normalize deriva o predicado físico de cada canal a partir dos filtros
// lógicos da requisição. Uma loja lógica não mapeada cai para "sem filtro de
// loja" apenas, nunca é erro.
func (s *Service) normalize(filters *domain.ReportFilters) (repository.POSQuery, repository.OnlineQuery) {
	posQuery := repository.POSQuery{Period: filters.Period}
	onlineQuery := repository.OnlineQuery{Period: filters.Period}

	if filters.Store == "" || filters.Store == domain.StoreAll {
		return posQuery, onlineQuery
	}

	store, ok := domain.LookupStore(filters.Store)
	if !ok {
		logrus.WithField("store", filters.Store).Warn("Loja não mapeada, consultando sem filtro de loja")
		return posQuery, onlineQuery
	}

	storeID := store.POSStoreID
	storeKey := store.OnlineKey
	posQuery.StoreID = &storeID
	onlineQuery.StoreKey = &storeKey

	return posQuery, onlineQuery
}

// TotalRevenue soma a receita de cada canal incluído no filtro e garante
// TotalRevenue == InStoreRevenue + OnlineRevenue
func (s *Service) TotalRevenue(ctx context.Context, filters *domain.ReportFilters) (*domain.RevenueFact, error) {
	posQuery, onlineQuery := s.normalize(filters)

	var (
		inStoreRevenue float64
		onlineRevenue  float64
		posErr         error
		onlineErr      error
	)

	wg := sync.WaitGroup{}

	if filters.Source.IncludesInStore() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inStoreRevenue, posErr = s.posRepo.Revenue(ctx, posQuery)
		}()
	}

	if filters.Source.IncludesOnline() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			onlineRevenue, onlineErr = s.onlineRepo.Revenue(ctx, onlineQuery)
		}()
	}

	wg.Wait()

	if err := firstError(posErr, onlineErr); err != nil {
		logrus.WithError(err).Error("Erro ao agregar receita por canal")
		return nil, fmt.Errorf("erro ao agregar receita por canal: %w", err)
	}

	inStoreRevenue = utils.RoundWithTwoDecimalPlace(inStoreRevenue)
	onlineRevenue = utils.RoundWithTwoDecimalPlace(onlineRevenue)

	// O total é a soma literal dos canais já arredondados; arredondar de novo
	// quebraria a igualdade exata com a soma dos componentes
	return &domain.RevenueFact{
		TotalRevenue:   inStoreRevenue + onlineRevenue,
		InStoreRevenue: inStoreRevenue,
		OnlineRevenue:  onlineRevenue,
	}, nil
}

// TotalOrders conta os pedidos de cada canal incluído no filtro e garante
// TotalOrders == InStoreOrders + OnlineOrders
func (s *Service) TotalOrders(ctx context.Context, filters *domain.ReportFilters) (*domain.OrderCountFact, error) {
	posQuery, onlineQuery := s.normalize(filters)

	var (
		inStoreOrders int
		onlineOrders  int
		posErr        error
		onlineErr     error
	)

	wg := sync.WaitGroup{}

	if filters.Source.IncludesInStore() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inStoreOrders, posErr = s.posRepo.OrderCount(ctx, posQuery)
		}()
	}

	if filters.Source.IncludesOnline() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			onlineOrders, onlineErr = s.onlineRepo.OrderCount(ctx, onlineQuery)
		}()
	}

	wg.Wait()

	if err := firstError(posErr, onlineErr); err != nil {
		logrus.WithError(err).Error("Erro ao contar pedidos por canal")
		return nil, fmt.Errorf("erro ao contar pedidos por canal: %w", err)
	}

	return &domain.OrderCountFact{
		TotalOrders:   inStoreOrders + onlineOrders,
		InStoreOrders: inStoreOrders,
		OnlineOrders:  onlineOrders,
	}, nil
}

// SalesTrend une as somas diárias dos dois canais e preenche a série completa
// de dias do período: um dia dentro do intervalo nunca é omitido da resposta,
// mesmo sem venda em nenhum canal.
func (s *Service) SalesTrend(ctx context.Context, filters *domain.ReportFilters) ([]domain.TrendPoint, error) {
	if filters.Period == nil {
		return nil, ErrPeriodRequired
	}

	posQuery, onlineQuery := s.normalize(filters)

	var (
		posDaily    []domain.DailySales
		onlineDaily []domain.DailySales
		posErr      error
		onlineErr   error
	)

	wg := sync.WaitGroup{}

	if filters.Source.IncludesInStore() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posDaily, posErr = s.posRepo.DailySales(ctx, posQuery)
		}()
	}

	if filters.Source.IncludesOnline() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			onlineDaily, onlineErr = s.onlineRepo.DailySales(ctx, onlineQuery)
		}()
	}

	wg.Wait()

	if err := firstError(posErr, onlineErr); err != nil {
		logrus.WithError(err).Error("Erro ao agregar vendas diárias por canal")
		return nil, fmt.Errorf("erro ao agregar vendas diárias por canal: %w", err)
	}

	salesByDay := make(map[string]float64)
	for _, day := range posDaily {
		salesByDay[day.Date] += day.Sales
	}
	for _, day := range onlineDaily {
		salesByDay[day.Date] += day.Sales
	}

	points := make([]domain.TrendPoint, 0)
	for _, day := range filters.Period.Days() {
		key := day.Format(time.DateOnly)
		points = append(points, domain.TrendPoint{
			Date:  key,
			Sales: utils.RoundWithTwoDecimalPlace(salesByDay[key]),
		})
	}

	return points, nil
}

// TopProducts une os agregados por produto dos dois canais e só então ordena
// pela receita combinada e trunca em limit. Ordenar por canal antes da união
// deixaria de fora produto forte em um único canal; empates preservam a ordem
// de varredura (PDV primeiro, depois online).
func (s *Service) TopProducts(ctx context.Context, filters *domain.ReportFilters, limit int) ([]domain.ProductSale, error) {
	if filters.Period == nil {
		return nil, ErrPeriodRequired
	}

	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	posQuery, onlineQuery := s.normalize(filters)

	var (
		posProducts    []domain.ChannelProductSales
		onlineProducts []domain.ChannelProductSales
		posErr         error
		onlineErr      error
	)

	wg := sync.WaitGroup{}

	if filters.Source.IncludesInStore() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posProducts, posErr = s.posRepo.ProductSales(ctx, posQuery)
		}()
	}

	if filters.Source.IncludesOnline() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			onlineProducts, onlineErr = s.onlineRepo.ProductSales(ctx, onlineQuery)
		}()
	}

	wg.Wait()

	if err := firstError(posErr, onlineErr); err != nil {
		logrus.WithError(err).Error("Erro ao agregar vendas por produto por canal")
		return nil, fmt.Errorf("erro ao agregar vendas por produto por canal: %w", err)
	}

	products := make([]domain.ProductSale, 0, len(posProducts)+len(onlineProducts))
	for _, row := range posProducts {
		products = append(products, s.enrichPOSProduct(row))
	}
	for _, row := range onlineProducts {
		products = append(products, domain.ProductSale{
			Name:     row.Identifier,
			Source:   domain.SourceOnline,
			Revenue:  utils.RoundWithTwoDecimalPlace(row.Revenue),
			Quantity: row.Quantity,
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})

	if len(products) > limit {
		products = products[:limit]
	}

	return products, nil
}

// SalesActivity une as células (dia da semana, hora) dos dois canais; a mesma
// célula populada pelos dois canais vira uma única linha somada
func (s *Service) SalesActivity(ctx context.Context, filters *domain.ReportFilters) ([]domain.ActivityCell, error) {
	if filters.Period == nil {
		return nil, ErrPeriodRequired
	}

	posQuery, onlineQuery := s.normalize(filters)

	var (
		posCells    []domain.ActivityCell
		onlineCells []domain.ActivityCell
		posErr      error
		onlineErr   error
	)

	wg := sync.WaitGroup{}

	if filters.Source.IncludesInStore() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			posCells, posErr = s.posRepo.Activity(ctx, posQuery)
		}()
	}

	if filters.Source.IncludesOnline() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			onlineCells, onlineErr = s.onlineRepo.Activity(ctx, onlineQuery)
		}()
	}

	wg.Wait()

	if err := firstError(posErr, onlineErr); err != nil {
		logrus.WithError(err).Error("Erro ao agregar atividade por canal")
		return nil, fmt.Errorf("erro ao agregar atividade por canal: %w", err)
	}

	type cellKey struct {
		dayOfWeek int
		hourOfDay int
	}

	merged := make(map[cellKey]*domain.ActivityCell)
	for _, cell := range append(posCells, onlineCells...) {
		key := cellKey{dayOfWeek: cell.DayOfWeek, hourOfDay: cell.HourOfDay}
		if existing, ok := merged[key]; ok {
			existing.TotalSales += cell.TotalSales
			existing.OrderCount += cell.OrderCount
			continue
		}
		copied := cell
		merged[key] = &copied
	}

	cells := make([]domain.ActivityCell, 0, len(merged))
	for _, cell := range merged {
		cell.TotalSales = utils.RoundWithTwoDecimalPlace(cell.TotalSales)
		cells = append(cells, *cell)
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].DayOfWeek != cells[j].DayOfWeek {
			return cells[i].DayOfWeek < cells[j].DayOfWeek
		}
		return cells[i].HourOfDay < cells[j].HourOfDay
	})

	return cells, nil
}

// enrichPOSProduct resolve o id numérico do PDV no catálogo. Produto ausente
// do catálogo degrada para um nome sinalizador com o id literal; uma linha
// faltante no catálogo nunca derruba o relatório inteiro.
func (s *Service) enrichPOSProduct(row domain.ChannelProductSales) domain.ProductSale {
	sale := domain.ProductSale{
		Source:   domain.SourceInStore,
		Revenue:  utils.RoundWithTwoDecimalPlace(row.Revenue),
		Quantity: row.Quantity,
	}

	var storeID int64
	if row.StoreID != nil {
		storeID = *row.StoreID
		sale.StoreName = domain.StoreNameForPOSID(storeID)
	}

	productID, err := strconv.ParseInt(row.Identifier, 10, 64)
	if err == nil {
		if item, ok := s.catalog.Lookup(storeID, productID); ok {
			salePrice := item.SalePrice
			costPrice := item.CostPrice

			sale.Name = item.Name
			sale.SalePrice = &salePrice
			sale.CostPrice = &costPrice
			return sale
		}
	}

	sale.Name = fmt.Sprintf("Unknown Product [%s]", row.Identifier)
	return sale
}

// firstError retorna o primeiro erro não nulo; qualquer falha de canal
// aborta a requisição inteira, sem resposta parcial
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
