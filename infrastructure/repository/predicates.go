package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

// POSQuery é o predicado normalizado do canal de loja. O PDV armazena a data
// de calendário local já correta, então o recorte de período é um intervalo
// inclusivo simples sobre transaction_date, sem qualquer deslocamento de dia.
type POSQuery struct {
	Period  *domain.DateRange
	StoreID *int64
}

// OnlineQuery é o predicado normalizado do canal online. A plataforma grava
// timestamps absolutos em segundos de epoch UTC, então o recorte de período é
// um intervalo fechado [início 00:00:00, fim 23:59:59] em epoch.
type OnlineQuery struct {
	Period   *domain.DateRange
	StoreKey *string
}

// apply acrescenta os predicados de período e loja do PDV à query.
// Declarado uma única vez e reutilizado por todas as agregações do canal,
// para que a composição de cláusulas não seja duplicada por endpoint.
func (q POSQuery) apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	if q.Period != nil {
		b = b.
			Where(squirrel.GtOrEq{"pt.transaction_date": q.Period.Start.Format(time.DateOnly)}).
			Where(squirrel.LtOrEq{"pt.transaction_date": q.Period.End.Format(time.DateOnly)})
	}

	if q.StoreID != nil {
		b = b.Where(squirrel.Eq{"pt.store_id": *q.StoreID})
	}

	return b.Where(squirrel.Eq{"pt.status": transactionCompleted})
}

// apply acrescenta os predicados de período e loja do canal online à query
func (q OnlineQuery) apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	if q.Period != nil {
		startEpoch, endEpoch := epochBounds(*q.Period)
		b = b.
			Where(squirrel.GtOrEq{"oo.order_timestamp": startEpoch}).
			Where(squirrel.LtOrEq{"oo.order_timestamp": endEpoch})
	}

	if q.StoreKey != nil {
		b = b.Where(squirrel.Eq{"oo.store_key": *q.StoreKey})
	}

	return b.Where(squirrel.Eq{"oo.status": orderCompleted})
}

// epochBounds converte o intervalo de datas no par fechado de epochs UTC
// [início 00:00:00, fim 23:59:59]
func epochBounds(r domain.DateRange) (int64, int64) {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 0, time.UTC)
	return start.Unix(), end.Unix()
}

// localTimestampExpr é a expressão SQL que converte o epoch UTC do pedido
// online para o horário local do restaurante (deslocamento fixo configurado).
// O deslocamento é um inteiro vindo da configuração, nunca de entrada do
// cliente, então pode ser interpolado direto na expressão.
func localTimestampExpr(utcOffsetHours int) string {
	return fmt.Sprintf(
		"(to_timestamp(oo.order_timestamp) AT TIME ZONE 'UTC' + interval '%d hours')",
		utcOffsetHours,
	)
}
