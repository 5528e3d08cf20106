package utils

import (
	"fmt"
	"time"
)

// ParseMonth valida um mês no formato mm-yyyy
func ParseMonth(month string) (time.Time, error) {
	parsed, err := time.Parse("01-2006", month)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, formato esperado mm-yyyy: %w", month, err)
	}

	return parsed, nil
}

// PreviousMonth retorna o mês anterior a ref no formato mm-yyyy
func PreviousMonth(ref time.Time) string {
	firstDay := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return firstDay.AddDate(0, -1, 0).Format("01-2006")
}
