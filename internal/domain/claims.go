package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações carregadas no token de acesso emitido pelo provedor de identidade
type Claims struct {
	UserID   string   `json:"uid"`
	RoleID   int      `json:"role"`
	Accounts []string `json:"accounts,omitempty"`
	jwt.RegisteredClaims
}

// CanAccess indica se o portador do token pode ler dados da conta informada.
// Papéis administrativos (1 e 2) acessam qualquer conta.
func (c *Claims) CanAccess(accountID string) bool {
	if c == nil {
		return false
	}
	if c.RoleID == 1 || c.RoleID == 2 {
		return true
	}
	return slices.Contains(c.Accounts, accountID)
}
