package apiErrors

import (
	"encoding/json"
	"net/http"
)

// APIError é o corpo de erro padronizado dos endpoints de relatório.
// Erros de entrada do cliente carregam apenas "error"; falhas internas
// acrescentam "details".
type APIError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Mensagens de erro reutilizadas pelos handlers
const (
	MsgInvalidDateFormat = "invalid date format"
	MsgInvalidSource     = "invalid source filter"
	MsgInvalidLimit      = "invalid limit parameter"
	MsgInternalError     = "failed to run report"
)

// WriteBadRequest responde 400 com o corpo {error}
func WriteBadRequest(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, APIError{Error: message})
}

// WriteInternalError responde 500 com o corpo {error, details}
func WriteInternalError(w http.ResponseWriter, message string, details any) {
	write(w, http.StatusInternalServerError, APIError{Error: message, Details: details})
}

func write(w http.ResponseWriter, status int, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}
