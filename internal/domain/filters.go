package domain

import (
	"errors"
	"time"
)

// Erros de validação dos filtros de relatório
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrIncompletePeriod  = errors.New("both startDate and endDate must be provided")
	ErrUnknownSource     = errors.New("unknown source filter")
)

// ChannelSource identifica a origem dos pedidos: PDV da loja ou plataforma online (Bite)
type ChannelSource string

const (
	SourceAll     ChannelSource = "All"
	SourceInStore ChannelSource = "In Store"
	SourceOnline  ChannelSource = "Bite"
)

// ParseChannelSource valida o parâmetro `source` da query string.
// Ausente equivale a All; qualquer outro valor fora do enum é erro do cliente.
func ParseChannelSource(raw string) (ChannelSource, error) {
	switch raw {
	case "", string(SourceAll):
		return SourceAll, nil
	case string(SourceInStore):
		return SourceInStore, nil
	case string(SourceOnline):
		return SourceOnline, nil
	}
	return "", ErrUnknownSource
}

func (s ChannelSource) IncludesInStore() bool {
	return s == SourceAll || s == SourceInStore
}

func (s ChannelSource) IncludesOnline() bool {
	return s == SourceAll || s == SourceOnline
}

// DateRange é um intervalo fechado de datas de calendário, sem componente de hora.
// End anterior a Start é aceito e produz resultado vazio, nunca erro.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange monta o intervalo a partir das datas já validadas.
// Regras: nenhuma data informada significa "sem filtro de período" (nil) quando
// o endpoint permite; apenas uma das duas informada é sempre erro.
func NewDateRange(start, end *time.Time, required bool) (*DateRange, error) {
	if start == nil && end == nil {
		if required {
			return nil, ErrIncompletePeriod
		}
		return nil, nil
	}

	if start == nil || end == nil {
		return nil, ErrIncompletePeriod
	}

	return &DateRange{Start: *start, End: *end}, nil
}

// Days retorna todos os dias de calendário do intervalo, em ordem crescente.
// Intervalo invertido produz lista vazia.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ReportFilters agrupa os filtros comuns aos cinco endpoints de relatório
type ReportFilters struct {
	Period *DateRange
	Store  string
	Source ChannelSource
}
