package catalog

import (
	"encoding/json"
	"os"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tavolagroup/resto-insights-api/internal/config"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

// Snapshot é uma visão imutável do catálogo de produtos do PDV, particionada
// pelo id físico da loja. Requisições concorrentes apenas leem o snapshot
// corrente; um reload substitui o snapshot inteiro de uma vez, nunca muta
// entradas no lugar.
type Snapshot struct {
	partitions map[int64]map[int64]domain.CatalogItem
	loadedAt   time.Time
}

// Lookup resolve um produto pelo par (loja, id)
func (s *Snapshot) Lookup(storeID, productID int64) (domain.CatalogItem, bool) {
	partition, ok := s.partitions[storeID]
	if !ok {
		return domain.CatalogItem{}, false
	}

	item, ok := partition[productID]
	return item, ok
}

// Size retorna o total de itens carregados em todas as partições
func (s *Snapshot) Size() int {
	total := 0
	for _, partition := range s.partitions {
		total += len(partition)
	}
	return total
}

// Service carrega e serve o catálogo estático de produtos. O catálogo vem de
// um arquivo JSON por loja (arrays de {Id, Name, SalePrice, CostPrice});
// arquivo ausente ou ilegível degrada para partição vazia com aviso no log,
// nunca derruba o processo.
type Service struct {
	cfg      *config.Config
	snapshot atomic.Pointer[Snapshot]
}

func NewService(cfg *config.Config) *Service {
	s := &Service{cfg: cfg}
	s.snapshot.Store(&Snapshot{partitions: map[int64]map[int64]domain.CatalogItem{}})
	return s
}

// catalogFiles mapeia cada loja lógica para o arquivo configurado
func (s *Service) catalogFiles() map[string]string {
	return map[string]string{
		"Hawthorn": s.cfg.Catalog.HawthornFile,
		"Richmond": s.cfg.Catalog.RichmondFile,
	}
}

// Load lê todos os arquivos de catálogo e troca o snapshot corrente pelo novo
// de forma atômica. Falha em um arquivo não impede o carregamento dos demais.
func (s *Service) Load() error {
	partitions := make(map[int64]map[int64]domain.CatalogItem)

	for storeName, file := range s.catalogFiles() {
		store, ok := domain.LookupStore(storeName)
		if !ok {
			logrus.WithField("store", storeName).Warn("Loja do catálogo não mapeada, partição ignorada")
			continue
		}

		partition, err := loadPartition(file)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"store": storeName,
				"file":  file,
			}).Warn("Erro ao carregar catálogo da loja, usando partição vazia")
			partition = map[int64]domain.CatalogItem{}
		}

		partitions[store.POSStoreID] = partition
	}

	snapshot := &Snapshot{
		partitions: partitions,
		loadedAt:   time.Now(),
	}
	s.snapshot.Store(snapshot)

	logrus.WithField("items", snapshot.Size()).Info("Catálogo de produtos carregado")
	return nil
}

// Lookup resolve um produto no snapshot corrente
func (s *Service) Lookup(storeID, productID int64) (domain.CatalogItem, bool) {
	return s.snapshot.Load().Lookup(storeID, productID)
}

// LoadedAt retorna quando o snapshot corrente foi carregado
func (s *Service) LoadedAt() time.Time {
	return s.snapshot.Load().loadedAt
}

func loadPartition(file string) (map[int64]domain.CatalogItem, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	partition := make(map[int64]domain.CatalogItem, len(items))
	for _, item := range items {
		partition[item.ID] = item
	}

	return partition, nil
}
