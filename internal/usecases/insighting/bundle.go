package insighting

import (
	"maps"
	"slices"

	"github.com/vfg2006/bill-insights-api/internal/domain"
)

// BundleParts são as saídas de cada etapa que compõem o bundle
type BundleParts struct {
	Bill       domain.BillRecord
	Usage      domain.UsageBlock
	Costs      domain.CostBlock
	Solar      *domain.SolarEfficiency
	Comparison *domain.PeerComparison
	Insights   []domain.Insight
	Warnings   []string
}

// Assemble apenas copia os campos para o bundle. Não carrega ids nem horários,
// então entradas iguais produzem o mesmo JSON.
func Assemble(parts BundleParts) domain.InsightBundle {
	bundle := domain.InsightBundle{
		Summary: domain.Summary{
			TotalAmount:   parts.Bill.TotalAmount,
			DueDate:       parts.Bill.DueDate,
			BillingPeriod: parts.Bill.BillingPeriod.Label,
		},
		Usage:    parts.Usage,
		Costs:    parts.Costs,
		Insights: slices.Clone(parts.Insights),
		Warnings: slices.Clone(parts.Warnings),
	}

	bundle.Costs.Breakdown = maps.Clone(parts.Costs.Breakdown)
	bundle.Costs.Categories = slices.Clone(parts.Costs.Categories)
	if bundle.Costs.Breakdown == nil {
		bundle.Costs.Breakdown = map[string]float64{}
	}

	if bundle.Insights == nil {
		bundle.Insights = []domain.Insight{}
	}

	if parts.Solar != nil {
		solar := *parts.Solar
		bundle.Solar = &solar
	}

	if parts.Comparison != nil {
		comparison := *parts.Comparison
		comparison.Entries = slices.Clone(parts.Comparison.Entries)
		bundle.Comparison = &comparison
	}

	return bundle
}
