package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

func testPeriod(start, end string) *domain.DateRange {
	s, _ := time.Parse(time.DateOnly, start)
	e, _ := time.Parse(time.DateOnly, end)
	return &domain.DateRange{Start: s, End: e}
}

func TestPOSQuery_Apply(t *testing.T) {
	storeID := int64(2)

	t.Run("Período e loja completos", func(t *testing.T) {
		q := POSQuery{Period: testPeriod("2025-03-01", "2025-03-05"), StoreID: &storeID}

		sql, args, err := q.apply(squirrel.Select("COUNT(*)").From(posTransactionsTable)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		require.NoError(t, err)

		// O recorte do PDV é comparação direta de data de calendário, sem
		// deslocamento de dia nem conversão de fuso
		assert.Contains(t, sql, "pt.transaction_date >= $1")
		assert.Contains(t, sql, "pt.transaction_date <= $2")
		assert.Contains(t, sql, "pt.store_id = $3")
		assert.Contains(t, sql, "pt.status = $4")
		assert.Equal(t, []interface{}{"2025-03-01", "2025-03-05", int64(2), "completed"}, args)
	})

	t.Run("Sem filtros opcionais resta só o status", func(t *testing.T) {
		sql, args, err := POSQuery{}.apply(squirrel.Select("COUNT(*)").From(posTransactionsTable)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		require.NoError(t, err)

		assert.NotContains(t, sql, "transaction_date")
		assert.NotContains(t, sql, "store_id")
		assert.Equal(t, []interface{}{"completed"}, args)
	})
}

func TestOnlineQuery_Apply(t *testing.T) {
	storeKey := "hawthorn"

	t.Run("Período vira intervalo fechado de epoch", func(t *testing.T) {
		q := OnlineQuery{Period: testPeriod("2025-03-01", "2025-03-02"), StoreKey: &storeKey}

		sql, args, err := q.apply(squirrel.Select("COUNT(*)").From(onlineOrdersTable)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		require.NoError(t, err)

		assert.Contains(t, sql, "oo.order_timestamp >= $1")
		assert.Contains(t, sql, "oo.order_timestamp <= $2")
		assert.Contains(t, sql, "oo.store_key = $3")
		assert.Contains(t, sql, "oo.status = $4")

		// 2025-03-01T00:00:00Z e 2025-03-02T23:59:59Z
		assert.Equal(t, []interface{}{int64(1740787200), int64(1740959999), "hawthorn", "completed"}, args)
	})
}

func TestPosProductSalesQuery(t *testing.T) {
	sql, args, err := posProductSalesQuery(POSQuery{})
	require.NoError(t, err)

	// Itens de preço unitário zero ficam fora da agregação de produtos
	assert.Contains(t, sql, "pti.unit_price > $1")
	assert.Contains(t, sql, "pt.status = $2")
	assert.Contains(t, sql, "GROUP BY pt.store_id, pti.product_id")
	assert.Equal(t, []interface{}{0, "completed"}, args)
}

func TestOnlineProductSalesQuery(t *testing.T) {
	sql, args, err := onlineProductSalesQuery(OnlineQuery{})
	require.NoError(t, err)

	// Itens de quantidade zero ficam fora da agregação de produtos
	assert.Contains(t, sql, "ooi.quantity > $1")
	assert.Contains(t, sql, "oo.status = $2")
	assert.Contains(t, sql, "GROUP BY ooi.product_name")
	assert.Equal(t, []interface{}{0, "completed"}, args)
}

func TestEpochBounds(t *testing.T) {
	start, end := epochBounds(*testPeriod("2025-03-01", "2025-03-01"))

	// Dia único: o limite superior cobre o dia inteiro
	assert.Equal(t, int64(86399), end-start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), start)
}

func TestLocalTimestampExpr(t *testing.T) {
	assert.Equal(t,
		"(to_timestamp(oo.order_timestamp) AT TIME ZONE 'UTC' + interval '11 hours')",
		localTimestampExpr(11),
	)
}
