package domain

type InsightKind string

const (
	InsightKindInfo    InsightKind = "info"
	InsightKindWarning InsightKind = "warning"
	InsightKindTip     InsightKind = "tip"
)

// Insight é uma observação derivada da conta, com payload numérico opcional
type Insight struct {
	Kind         InsightKind `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Value        *float64    `json:"value,omitempty"`
	CompareValue *float64    `json:"compareValue,omitempty"`
	Change       *float64    `json:"change,omitempty"`
}

type Summary struct {
	TotalAmount   float64 `json:"totalAmount"`
	DueDate       string  `json:"dueDate"`
	BillingPeriod string  `json:"billingPeriod"`
}

type UsageBlock struct {
	Current      float64 `json:"current"`
	Previous     float64 `json:"previous"`
	Change       float64 `json:"change"`
	AverageDaily float64 `json:"averageDaily"`
}

type CostShare struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Share    float64 `json:"share"`
}

type CostBlock struct {
	Breakdown      map[string]float64 `json:"breakdown"`
	LargestExpense string             `json:"largestExpense"`
	LargestAmount  float64            `json:"largestAmount"`
	Share          float64            `json:"share"`
	Categories     []CostShare        `json:"categories"`
}

// InsightBundle é o resultado imutável de uma análise
type InsightBundle struct {
	Summary    Summary          `json:"summary"`
	Usage      UsageBlock       `json:"usage"`
	Costs      CostBlock        `json:"costs"`
	Solar      *SolarEfficiency `json:"solar,omitempty"`
	Comparison *PeerComparison  `json:"comparison,omitempty"`
	Insights   []Insight        `json:"insights"`
	Warnings   []string         `json:"warnings,omitempty"`
}
