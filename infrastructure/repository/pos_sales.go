package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tavolagroup/resto-insights-api/infrastructure/database/postgres"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

const (
	posTransactionsTable     = "pos_transactions pt"
	posTransactionItemsTable = "pos_transaction_items pti"

	transactionCompleted = "completed"
)

// POSSalesRepository agrega as vendas do canal de loja (PDV). Somente leitura:
// cada operação é uma única agregação SQL sob o predicado normalizado.
type POSSalesRepository interface {
	Revenue(ctx context.Context, q POSQuery) (float64, error)
	OrderCount(ctx context.Context, q POSQuery) (int, error)
	DailySales(ctx context.Context, q POSQuery) ([]domain.DailySales, error)
	ProductSales(ctx context.Context, q POSQuery) ([]domain.ChannelProductSales, error)
	Activity(ctx context.Context, q POSQuery) ([]domain.ActivityCell, error)
}

type posSalesRepository struct {
	conn *postgres.Connection
}

func NewPOSSalesRepository(conn *postgres.Connection) POSSalesRepository {
	return &posSalesRepository{
		conn: conn,
	}
}

func (r *posSalesRepository) Revenue(ctx context.Context, q POSQuery) (float64, error) {
	builder := squirrel.
		Select("COALESCE(SUM(pt.total_amount), 0)").
		From(posTransactionsTable)

	query, args, err := q.apply(builder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("erro ao somar receita do PDV: %w", err)
	}

	return revenue, nil
}

func (r *posSalesRepository) OrderCount(ctx context.Context, q POSQuery) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(posTransactionsTable)

	query, args, err := q.apply(builder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar transações do PDV: %w", err)
	}

	return count, nil
}

func (r *posSalesRepository) DailySales(ctx context.Context, q POSQuery) ([]domain.DailySales, error) {
	builder := squirrel.
		Select(
			"pt.transaction_date::text AS day",
			"COALESCE(SUM(pt.total_amount), 0) AS sales",
		).
		From(posTransactionsTable)

	query, args, err := q.apply(builder).
		GroupBy("pt.transaction_date").
		OrderBy("pt.transaction_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas diárias do PDV: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.DailySales, 0)
	for rows.Next() {
		var day domain.DailySales
		if err := rows.Scan(&day.Date, &day.Sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas diárias do PDV: %w", err)
		}
		sales = append(sales, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// ProductSales agrega quantidade e receita por (loja, produto). O id da loja
// acompanha cada linha porque o catálogo de enriquecimento é particionado por
// loja.
func (r *posSalesRepository) ProductSales(ctx context.Context, q POSQuery) ([]domain.ChannelProductSales, error) {
	query, args, err := posProductSalesQuery(q)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por produto do PDV: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ChannelProductSales, 0)
	for rows.Next() {
		var product domain.ChannelProductSales
		var storeID int64
		if err := rows.Scan(&storeID, &product.Identifier, &product.Quantity, &product.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por produto do PDV: %w", err)
		}
		product.StoreID = &storeID
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// posProductSalesQuery monta a agregação por (loja, produto). Itens com preço
// unitário zero (brindes, ajustes) não contam como venda.
func posProductSalesQuery(q POSQuery) (string, []interface{}, error) {
	builder := squirrel.
		Select(
			"pt.store_id",
			"pti.product_id",
			"COALESCE(SUM(pti.quantity), 0) AS quantity",
			"COALESCE(SUM(pti.quantity * pti.unit_price), 0) AS revenue",
		).
		From(posTransactionItemsTable).
		Join("pos_transactions pt ON pt.id = pti.transaction_id").
		Where(squirrel.Gt{"pti.unit_price": 0})

	return q.apply(builder).
		GroupBy("pt.store_id", "pti.product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Activity agrega vendas por (dia da semana, hora). O PDV já grava o dia da
// semana local (1=segunda..7=domingo) e a hora local, então não há conversão
// de fuso neste canal.
func (r *posSalesRepository) Activity(ctx context.Context, q POSQuery) ([]domain.ActivityCell, error) {
	builder := squirrel.
		Select(
			"pt.day_of_week",
			"EXTRACT(HOUR FROM pt.transaction_time)::int AS hour_of_day",
			"COALESCE(SUM(pt.total_amount), 0) AS total_sales",
			"COUNT(*) AS order_count",
		).
		From(posTransactionsTable)

	query, args, err := q.apply(builder).
		GroupBy("pt.day_of_week", "EXTRACT(HOUR FROM pt.transaction_time)").
		OrderBy("pt.day_of_week ASC", "hour_of_day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar atividade do PDV: %w", err)
	}
	defer rows.Close()

	cells := make([]domain.ActivityCell, 0)
	for rows.Next() {
		var cell domain.ActivityCell
		if err := rows.Scan(&cell.DayOfWeek, &cell.HourOfDay, &cell.TotalSales, &cell.OrderCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade do PDV: %w", err)
		}
		cells = append(cells, cell)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cells, nil
}
