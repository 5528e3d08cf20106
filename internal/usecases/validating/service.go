package validating

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/log"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// daysPerBillingCycle é usado para estimar a média diária quando a conta não informa
	daysPerBillingCycle = 30

	// chargesToleranceAbs e chargesToleranceRel definem a diferença aceita entre a soma
	// das cobranças e o valor total antes de emitir um aviso
	chargesToleranceAbs = 0.01
	chargesToleranceRel = 0.01
)

// Validator confere e normaliza o registro extraído da conta
type Validator interface {
	Validate(ctx context.Context, raw domain.RawBill) (*ValidationResult, error)
	ValidatePayload(ctx context.Context, payload []byte) (*ValidationResult, error)
}

// ValidationResult é a conta validada e os avisos não fatais encontrados
type ValidationResult struct {
	Bill     domain.BillRecord
	Warnings []string
}

type Service struct {
	schema *jsonschema.Schema
}

// NewService cria o validador com o schema embutido do payload
func NewService() (*Service, error) {
	schema, err := compileBillSchema()
	if err != nil {
		return nil, err
	}

	return &Service{schema: schema}, nil
}

// ValidatePayload confere o JSON contra o schema, decodifica e valida o registro
func (s *Service) ValidatePayload(ctx context.Context, payload []byte) (*ValidationResult, error) {
	if err := validateAgainstSchema(s.schema, payload); err != nil {
		return nil, err
	}

	var raw domain.RawBill
	decoder := jsonAPI.NewDecoder(bytes.NewReader(payload))
	if err := decoder.Decode(&raw); err != nil {
		return nil, &PayloadError{Err: ErrInvalidPayload, Details: err.Error()}
	}

	return s.Validate(ctx, raw)
}

// Validate coage os campos numéricos, aplica os valores padrão e registra avisos.
// Apenas energyUsage e totalAmount são obrigatórios.
func (s *Service) Validate(ctx context.Context, raw domain.RawBill) (*ValidationResult, error) {
	logger := log.ForContext(ctx)
	warnings := make([]string, 0)

	energyUsage, err := requiredNonNegative("energyUsage", raw.EnergyUsage)
	if err != nil {
		return nil, err
	}

	totalAmount, err := requiredNonNegative("totalAmount", raw.TotalAmount)
	if err != nil {
		return nil, err
	}

	bill := domain.BillRecord{
		AccountID:    coerceString(raw.AccountID),
		CustomerName: coerceString(raw.CustomerName),
		Address:      coerceString(raw.Address),
		DueDate:      coerceString(raw.DueDate),
		Discom:       coerceString(raw.Discom),
		TotalAmount:  totalAmount,
		EnergyUsage:  energyUsage,
	}

	bill.PreviousUsage = optionalNonNegative("previousUsage", raw.PreviousUsage, energyUsage, &warnings)
	bill.AverageDailyUsage = optionalNonNegative("averageDailyUsage", raw.AverageDailyUsage, energyUsage/daysPerBillingCycle, &warnings)
	bill.SolarGeneration = optionalNonNegative("solarGeneration", raw.SolarGeneration, 0, &warnings)
	bill.SystemSizeKW = optionalNonNegative("systemSizeKw", raw.SystemSizeKW, 0, &warnings)

	bill.Location = coerceLocation(raw.Location, &warnings)
	bill.Rates = coerceAmounts("rates", raw.Rates, &warnings)
	bill.Charges = coerceAmounts("charges", raw.Charges, &warnings)

	bill.BillingPeriod = domain.BillingPeriod{Label: coerceString(raw.BillingPeriod)}
	if bill.BillingPeriod.Label != "" {
		period, err := ParseBillingPeriod(bill.BillingPeriod.Label)
		if err != nil {
			warnings = append(warnings, err.Error())
		} else {
			bill.BillingPeriod.Period = period
		}
	} else {
		warnings = append(warnings, "billingPeriod ausente")
	}

	if warning, ok := checkChargesTotal(bill.Charges, totalAmount); !ok {
		warnings = append(warnings, warning)
	}

	if len(warnings) > 0 {
		logger.WithFields(log.Fields{
			"account_id": bill.AccountID,
			"warnings":   warnings,
		}).Debug("validating: conta aceita com avisos")
	}

	return &ValidationResult{Bill: bill, Warnings: warnings}, nil
}

func requiredNonNegative(field string, v any) (float64, error) {
	if isAbsent(v) {
		return 0, NewIncompleteBillError(field, "campo ausente")
	}

	f, ok := coerceNumber(v)
	if !ok {
		return 0, NewIncompleteBillError(field, fmt.Sprintf("valor não numérico %v", v))
	}

	if f < 0 {
		return 0, NewIncompleteBillError(field, fmt.Sprintf("valor negativo %v", f))
	}

	return f, nil
}

// optionalNonNegative devolve o valor coagido ou o padrão, registrando o motivo do descarte
func optionalNonNegative(field string, v any, fallback float64, warnings *[]string) float64 {
	if isAbsent(v) {
		return fallback
	}

	f, ok := coerceNumber(v)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("%s não numérico, usando %s", field, formatFloat(fallback)))
		return fallback
	}

	if f < 0 {
		*warnings = append(*warnings, fmt.Sprintf("%s negativo, usando %s", field, formatFloat(fallback)))
		return fallback
	}

	return f
}

func coerceLocation(raw *domain.RawLocation, warnings *[]string) domain.Location {
	if raw == nil {
		return domain.Location{}
	}

	lat, latOK := coerceNumber(raw.Latitude)
	lon, lonOK := coerceNumber(raw.Longitude)
	if !latOK || !lonOK {
		*warnings = append(*warnings, "location incompleta")
		return domain.Location{}
	}

	if math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		*warnings = append(*warnings, fmt.Sprintf("location fora do intervalo válido (%v, %v)", lat, lon))
		return domain.Location{}
	}

	return domain.Location{Latitude: lat, Longitude: lon, Known: true}
}

func coerceAmounts(field string, raw map[string]any, warnings *[]string) map[string]float64 {
	amounts := make(map[string]float64, len(raw))

	for _, name := range sortedKeys(raw) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}

		f, ok := coerceNumber(raw[name])
		if !ok || f < 0 {
			*warnings = append(*warnings, fmt.Sprintf("%s[%s] descartado: valor inválido", field, trimmed))
			continue
		}

		amounts[trimmed] = f
	}

	return amounts
}

// checkChargesTotal confere se a soma das cobranças bate com o total dentro da tolerância
func checkChargesTotal(charges map[string]float64, total float64) (string, bool) {
	if len(charges) == 0 {
		return "", true
	}

	var sum float64
	for _, name := range sortedKeys(charges) {
		sum += charges[name]
	}

	tolerance := math.Max(chargesToleranceAbs, total*chargesToleranceRel)
	if math.Abs(sum-total) <= tolerance {
		return "", true
	}

	return fmt.Sprintf("soma das cobranças (%s) difere do total (%s)",
		formatFloat(utils.RoundWithTwoDecimalPlace(sum)), formatFloat(total)), false
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// sortedKeys garante ordem determinística ao percorrer mapas
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
