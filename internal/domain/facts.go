package domain

// RevenueFact é o resultado reconciliado de receita. A invariante
// TotalRevenue == InStoreRevenue + OnlineRevenue vale sempre; um canal
// suprimido pelo filtro contribui com zero, nunca com ausência.
type RevenueFact struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	InStoreRevenue float64 `json:"inStoreRevenue"`
	OnlineRevenue  float64 `json:"onlineRevenue"`
}

// OrderCountFact é o equivalente de RevenueFact para contagem de pedidos
type OrderCountFact struct {
	TotalOrders   int `json:"totalOrders"`
	InStoreOrders int `json:"inStoreOrders"`
	OnlineOrders  int `json:"onlineOrders"`
}

// TrendPoint é um dia de calendário da linha de tendência. Dias sem venda em
// nenhum dos canais aparecem com Sales = 0, nunca são omitidos.
type TrendPoint struct {
	Date  string  `json:"date"`
	Sales float64 `json:"sales"`
}

// DailySales é a soma parcial de um único canal para um dia de calendário
type DailySales struct {
	Date  string
	Sales float64
}

// ChannelProductSales é o agregado parcial de um produto em um único canal,
// antes do enriquecimento. Para o PDV, Identifier é o id numérico do produto e
// StoreID aponta a partição do catálogo; para o canal online, Identifier já é
// o nome legível informado no pedido e StoreID é nil.
type ChannelProductSales struct {
	Identifier string
	Quantity   int
	Revenue    float64
	StoreID    *int64
}

// ProductSale é uma linha do relatório de produtos mais vendidos, já
// reconciliada e enriquecida. SalePrice e CostPrice só existem para produtos
// do PDV resolvidos pelo catálogo; para o canal online ficam ausentes.
type ProductSale struct {
	Name      string        `json:"name"`
	Source    ChannelSource `json:"source"`
	StoreName string        `json:"storeName,omitempty"`
	Revenue   float64       `json:"revenue"`
	SalePrice *float64      `json:"salePrice,omitempty"`
	CostPrice *float64      `json:"costPrice,omitempty"`
	Quantity  int           `json:"quantity"`
}

// ActivityCell é uma célula do mapa de calor de atividade: uma combinação
// (dia da semana, hora) observada nos dados combinados. Dia da semana segue
// ISO: 1 = segunda-feira .. 7 = domingo.
type ActivityCell struct {
	DayOfWeek  int     `json:"day_of_week"`
	HourOfDay  int     `json:"hour_of_day"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

// CatalogItem é um item do catálogo estático de produtos do PDV
type CatalogItem struct {
	ID        int64   `json:"Id"`
	Name      string  `json:"Name"`
	SalePrice float64 `json:"SalePrice"`
	CostPrice float64 `json:"CostPrice"`
}
