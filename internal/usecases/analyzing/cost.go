package analyzing

import (
	"maps"
	"slices"
	"sort"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

// UncategorizedExpense é o principal custo reportado quando a conta não detalha cobranças
const UncategorizedExpense = "Uncategorized"

// AnalyzeCost encontra a categoria de maior valor e a participação de cada uma no total.
// Empates ficam com o nome lexicograficamente menor.
func AnalyzeCost(bill domain.BillRecord) domain.CostBlock {
	block := domain.CostBlock{
		Breakdown:      maps.Clone(bill.Charges),
		LargestExpense: UncategorizedExpense,
		Categories:     make([]domain.CostShare, 0, len(bill.Charges)),
	}
	if block.Breakdown == nil {
		block.Breakdown = map[string]float64{}
	}

	names := slices.Sorted(maps.Keys(bill.Charges))
	found := false
	for _, name := range names {
		amount := bill.Charges[name]
		if !found || amount > block.LargestAmount {
			block.LargestExpense = name
			block.LargestAmount = amount
			found = true
		}

		block.Categories = append(block.Categories, domain.CostShare{
			Category: name,
			Amount:   amount,
			Share:    share(amount, bill.TotalAmount),
		})
	}

	sort.SliceStable(block.Categories, func(i, j int) bool {
		return block.Categories[i].Amount > block.Categories[j].Amount
	})

	block.Share = share(block.LargestAmount, bill.TotalAmount)

	return block
}

// share é a participação percentual limitada a [0, 100]
func share(amount, total float64) float64 {
	return utils.Clamp(utils.Percentage(amount, total), 0, 100)
}
