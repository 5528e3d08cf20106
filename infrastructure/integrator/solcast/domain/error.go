package domain

import "fmt"

// ResponseStatus é o corpo de erro padrão da Solcast
type ResponseStatus struct {
	ResponseStatus struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	} `json:"response_status"`
}

// APIError representa uma resposta não-2xx da Solcast
type APIError struct {
	StatusCode int
	Status     string
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("solcast respondeu %s (%s): %s", e.Status, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("solcast respondeu %s", e.Status)
}

// Temporary indica se a falha pode desaparecer numa nova tentativa
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
