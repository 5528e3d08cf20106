package insighting

import "errors"

var (
	ErrAnalysisNotFound    = errors.New("análise não encontrada")
	ErrPersistenceDisabled = errors.New("persistência de análises desabilitada")
	ErrAccountAccessDenied = errors.New("sem acesso à conta da análise")
)
