package validating

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/bill-insights-api/internal/domain"
)

// periodDelimiters são os separadores aceitos entre as duas datas do período
var periodDelimiters = []string{" - ", " – ", " — ", " to "}

// dateLayouts são os formatos de data aceitos, na ordem de tentativa
var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseBillingPeriod interpreta "início - fim" como um intervalo semiaberto em UTC.
// A data final impressa na conta é inclusiva, então End é o dia seguinte a ela.
func ParseBillingPeriod(label string) (*domain.Period, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: período vazio", ErrMalformedBillingPeriod)
	}

	for _, delimiter := range periodDelimiters {
		parts := strings.Split(label, delimiter)
		if len(parts) != 2 {
			continue
		}

		start, err := parseDate(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: data inicial %q", ErrMalformedBillingPeriod, parts[0])
		}

		end, err := parseDate(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: data final %q", ErrMalformedBillingPeriod, parts[1])
		}

		if end.Before(start) {
			return nil, fmt.Errorf("%w: data final anterior à inicial", ErrMalformedBillingPeriod)
		}

		return &domain.Period{Start: start, End: end.AddDate(0, 0, 1)}, nil
	}

	return nil, fmt.Errorf("%w: nenhum separador reconhecido em %q", ErrMalformedBillingPeriod, label)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", raw)
}
