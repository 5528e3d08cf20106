package validating

import (
	"errors"
	"fmt"
)

// Erros específicos da validação de contas
var (
	// ErrIncompleteBill indica que consumo ou valor total não puderam ser interpretados
	ErrIncompleteBill = errors.New("incomplete bill")

	// ErrMalformedBillingPeriod indica um período de faturamento que não pôde ser interpretado
	ErrMalformedBillingPeriod = errors.New("malformed billing period")

	// ErrInvalidPayload indica um JSON que não respeita o formato esperado do extrator
	ErrInvalidPayload = errors.New("invalid bill payload")
)

// IncompleteBillError é o único erro da análise que cruza a fronteira do motor
type IncompleteBillError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo obrigatório ausente ou inválido
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IncompleteBillError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

// Unwrap retorna o erro subjacente
func (e *IncompleteBillError) Unwrap() error {
	return e.Err
}

// NewIncompleteBillError cria um IncompleteBillError para o campo informado
func NewIncompleteBillError(field string, details string) *IncompleteBillError {
	return &IncompleteBillError{
		Err:     ErrIncompleteBill,
		Code:    "VAL_004",
		Field:   field,
		Details: details,
	}
}

// PayloadError descreve uma violação do schema do payload
type PayloadError struct {
	Err     error
	Details string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}
