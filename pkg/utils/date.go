package utils

import (
	"time"

	"github.com/tavolagroup/resto-insights-api/internal/domain"
)

// ParseDate valida estritamente o formato YYYY-MM-DD. String vazia significa
// "parâmetro ausente" e retorna nil sem erro; qualquer outro valor que não
// seja uma data exata nesse formato é erro do cliente.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, domain.ErrInvalidDateFormat
	}

	// time.Parse aceita variações que round-trip não preserva (ex.: "2025-3-05")
	if date.Format(time.DateOnly) != dateStr {
		return nil, domain.ErrInvalidDateFormat
	}

	return &date, nil
}
