package validating

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

// nonNumeric remove símbolos de moeda, separadores de milhar e sufixos de unidade
var nonNumeric = regexp.MustCompile(`[^\d.\-]`)

// isAbsent trata nil, texto vazio e o sentinela "Unknown" como ausência de valor
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, domain.UnknownSentinel)
}

// coerceNumber converte o valor bruto em número. ok=false quando ausente ou não numérico.
func coerceNumber(v any) (float64, bool) {
	if isAbsent(v) {
		return 0, false
	}

	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return 0, false
		}
		f = d.InexactFloat64()
	case string:
		cleaned := nonNumeric.ReplaceAllString(val, "")
		if cleaned == "" || cleaned == "-" || cleaned == "." {
			return 0, false
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return 0, false
		}
		f = d.InexactFloat64()
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// coerceString converte o valor bruto em texto, vazio quando ausente
func coerceString(v any) string {
	if isAbsent(v) {
		return ""
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
