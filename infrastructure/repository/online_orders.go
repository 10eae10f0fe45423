package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tavolagroup/resto-insights-api/infrastructure/database/postgres"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

const (
	onlineOrdersTable     = "online_orders oo"
	onlineOrderItemsTable = "online_order_items ooi"

	orderCompleted = "completed"
)

// OnlineOrdersRepository agrega os pedidos do canal online (Bite). Os
// timestamps são epoch UTC; qualquer agrupamento por dia ou hora converte
// para o horário local do restaurante dentro do próprio SQL.
type OnlineOrdersRepository interface {
	Revenue(ctx context.Context, q OnlineQuery) (float64, error)
	OrderCount(ctx context.Context, q OnlineQuery) (int, error)
	DailySales(ctx context.Context, q OnlineQuery) ([]domain.DailySales, error)
	ProductSales(ctx context.Context, q OnlineQuery) ([]domain.ChannelProductSales, error)
	Activity(ctx context.Context, q OnlineQuery) ([]domain.ActivityCell, error)
}

type onlineOrdersRepository struct {
	conn           *postgres.Connection
	utcOffsetHours int
}

func NewOnlineOrdersRepository(conn *postgres.Connection, utcOffsetHours int) OnlineOrdersRepository {
	return &onlineOrdersRepository{
		conn:           conn,
		utcOffsetHours: utcOffsetHours,
	}
}

func (r *onlineOrdersRepository) Revenue(ctx context.Context, q OnlineQuery) (float64, error) {
	builder := squirrel.
		Select("COALESCE(SUM(oo.total_price), 0)").
		From(onlineOrdersTable)

	query, args, err := q.apply(builder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("erro ao somar receita do canal online: %w", err)
	}

	return revenue, nil
}

func (r *onlineOrdersRepository) OrderCount(ctx context.Context, q OnlineQuery) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(onlineOrdersTable)

	query, args, err := q.apply(builder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos do canal online: %w", err)
	}

	return count, nil
}

// DailySales agrupa a receita por dia de calendário local do restaurante,
// não pelo dia UTC do timestamp
func (r *onlineOrdersRepository) DailySales(ctx context.Context, q OnlineQuery) ([]domain.DailySales, error) {
	localDay := fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", localTimestampExpr(r.utcOffsetHours))

	builder := squirrel.
		Select(
			localDay+" AS day",
			"COALESCE(SUM(oo.total_price), 0) AS sales",
		).
		From(onlineOrdersTable)

	query, args, err := q.apply(builder).
		GroupBy(localDay).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas diárias do canal online: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.DailySales, 0)
	for rows.Next() {
		var day domain.DailySales
		if err := rows.Scan(&day.Date, &day.Sales); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas diárias do canal online: %w", err)
		}
		sales = append(sales, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// ProductSales agrega quantidade e receita por nome de produto. O nome já é o
// texto legível informado no pedido, então não há enriquecimento posterior.
func (r *onlineOrdersRepository) ProductSales(ctx context.Context, q OnlineQuery) ([]domain.ChannelProductSales, error) {
	query, args, err := onlineProductSalesQuery(q)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas por produto do canal online: %w", err)
	}
	defer rows.Close()

	products := make([]domain.ChannelProductSales, 0)
	for rows.Next() {
		var product domain.ChannelProductSales
		if err := rows.Scan(&product.Identifier, &product.Quantity, &product.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por produto do canal online: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// onlineProductSalesQuery monta a agregação por nome de produto. Itens com
// quantidade zero não contam como venda.
func onlineProductSalesQuery(q OnlineQuery) (string, []interface{}, error) {
	builder := squirrel.
		Select(
			"ooi.product_name",
			"COALESCE(SUM(ooi.quantity), 0) AS quantity",
			"COALESCE(SUM(ooi.quantity * ooi.item_price), 0) AS revenue",
		).
		From(onlineOrderItemsTable).
		Join("online_orders oo ON oo.id = ooi.order_id").
		Where(squirrel.Gt{"ooi.quantity": 0})

	return q.apply(builder).
		GroupBy("ooi.product_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Activity agrega vendas por (dia da semana ISO, hora) no horário local do
// restaurante
func (r *onlineOrdersRepository) Activity(ctx context.Context, q OnlineQuery) ([]domain.ActivityCell, error) {
	localTs := localTimestampExpr(r.utcOffsetHours)
	dowExpr := fmt.Sprintf("EXTRACT(ISODOW FROM %s)::int", localTs)
	hourExpr := fmt.Sprintf("EXTRACT(HOUR FROM %s)::int", localTs)

	builder := squirrel.
		Select(
			dowExpr+" AS day_of_week",
			hourExpr+" AS hour_of_day",
			"COALESCE(SUM(oo.total_price), 0) AS total_sales",
			"COUNT(*) AS order_count",
		).
		From(onlineOrdersTable)

	query, args, err := q.apply(builder).
		GroupBy(dowExpr, hourExpr).
		OrderBy("day_of_week ASC", "hour_of_day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar atividade do canal online: %w", err)
	}
	defer rows.Close()

	cells := make([]domain.ActivityCell, 0)
	for rows.Next() {
		var cell domain.ActivityCell
		if err := rows.Scan(&cell.DayOfWeek, &cell.HourOfDay, &cell.TotalSales, &cell.OrderCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade do canal online: %w", err)
		}
		cells = append(cells, cell)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cells, nil
}
