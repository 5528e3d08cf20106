// Package analyzing reúne os cálculos puros de consumo e custo de uma conta
package analyzing

import (
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

// AnalyzeUsage calcula a variação percentual do consumo em relação ao período anterior.
// A variação é 0 quando o consumo anterior é 0.
func AnalyzeUsage(bill domain.BillRecord) domain.UsageBlock {
	return domain.UsageBlock{
		Current:      bill.EnergyUsage,
		Previous:     bill.PreviousUsage,
		Change:       UsageChange(bill.EnergyUsage, bill.PreviousUsage),
		AverageDaily: bill.AverageDailyUsage,
	}
}

func UsageChange(current, previous float64) float64 {
	return utils.Percentage(current-previous, previous)
}
