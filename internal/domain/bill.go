// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// UnknownSentinel é o valor usado pela extração quando um campo não foi resolvido
const UnknownSentinel = "Unknown"

// RawBill é o registro de conta como chega do extrator. Os campos escalares podem
// conter números, textos com símbolos de moeda/unidade ou o sentinela "Unknown".
type RawBill struct {
	AccountID         any            `json:"accountId,omitempty"`
	CustomerName      any            `json:"customerName,omitempty"`
	Address           any            `json:"address,omitempty"`
	BillingPeriod     any            `json:"billingPeriod,omitempty"`
	DueDate           any            `json:"dueDate,omitempty"`
	TotalAmount       any            `json:"totalAmount,omitempty"`
	EnergyUsage       any            `json:"energyUsage,omitempty"`
	PreviousUsage     any            `json:"previousUsage,omitempty"`
	AverageDailyUsage any            `json:"averageDailyUsage,omitempty"`
	SolarGeneration   any            `json:"solarGeneration,omitempty"`
	SystemSizeKW      any            `json:"systemSizeKw,omitempty"`
	Location          *RawLocation   `json:"location,omitempty"`
	Rates             map[string]any `json:"rates,omitempty"`
	Charges           map[string]any `json:"charges,omitempty"`
	Discom            any            `json:"discom,omitempty"`
}

type RawLocation struct {
	Latitude  any `json:"latitude"`
	Longitude any `json:"longitude"`
}

// BillRecord é o registro validado e completo que entra no pipeline
type BillRecord struct {
	AccountID         string
	CustomerName      string
	Address           string
	BillingPeriod     BillingPeriod
	DueDate           string
	TotalAmount       float64
	EnergyUsage       float64
	PreviousUsage     float64
	AverageDailyUsage float64
	SolarGeneration   float64
	SystemSizeKW      float64
	Location          Location
	Rates             map[string]float64
	Charges           map[string]float64
	Discom            string
}

// HasSolar indica se a conta reporta geração solar no período
func (b BillRecord) HasSolar() bool {
	return b.SolarGeneration > 0
}

// BillingPeriod guarda o rótulo original e o intervalo interpretado (nil quando inválido)
type BillingPeriod struct {
	Label  string
	Period *Period
}

// Period é um intervalo semiaberto [Start, End)
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CoversIntervalEnding indica se um intervalo que termina em end está dentro do período.
// Amostras de previsão são rotuladas pelo fim do intervalo, então vale (Start, End].
func (p Period) CoversIntervalEnding(end time.Time) bool {
	return end.After(p.Start) && !end.After(p.End)
}

// Days retorna a quantidade de dias cobertos pelo intervalo
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

// Month retorna o mês de referência no formato mm-yyyy
func (p Period) Month() string {
	return p.Start.Format("01-2006")
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Known     bool    `json:"-"`
}
