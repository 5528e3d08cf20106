package ranking

import "errors"

var (
	ErrMissingBucket      = errors.New("região do ranking não informada")
	ErrInvalidMonth       = errors.New("mês do ranking inválido")
	ErrRankingUnavailable = errors.New("ranking solar indisponível sem banco de dados")
)
