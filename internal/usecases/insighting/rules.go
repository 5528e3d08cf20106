package insighting

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

const (
	usageChangeThreshold   = 10.0
	rateTierUsageThreshold = 500.0
	lowEfficiencyThreshold = 70.0
	potentialThreshold     = 50.0

	tierOneName = "tier 1"
	tierTwoName = "tier 2"
)

// facts reúne os resultados dos dois ramos da análise
type facts struct {
	bill  domain.BillRecord
	usage domain.UsageBlock
	costs domain.CostBlock
	solar *domain.SolarEfficiency
}

type rule func(f facts) (domain.Insight, bool)

// rules são avaliadas nesta ordem; cada regra emite no máximo um insight
var rules = []rule{
	usageIncreaseRule,
	usageReductionRule,
	dailyConsumptionRule,
	mainCostDriverRule,
	rateTierRule,
	solarEfficiencyRule,
	optimizationRule,
}

// Synthesize aplica as regras em ordem fixa. Nenhuma regra falha: dado ausente apenas suprime a regra.
func Synthesize(bill domain.BillRecord, usage domain.UsageBlock, costs domain.CostBlock, solar *domain.SolarEfficiency) []domain.Insight {
	f := facts{bill: bill, usage: usage, costs: costs, solar: solar}

	insights := make([]domain.Insight, 0, len(rules))
	for _, r := range rules {
		if insight, ok := r(f); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

func usageIncreaseRule(f facts) (domain.Insight, bool) {
	if f.usage.Change <= usageChangeThreshold {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Kind:         domain.InsightKindWarning,
		Title:        "Usage Increase Alert",
		Description:  fmt.Sprintf("Your energy usage has increased by %.1f%% compared to last month.", f.usage.Change),
		Value:        ptr(f.usage.Current),
		CompareValue: ptr(f.usage.Previous),
		Change:       ptr(f.usage.Change),
	}, true
}

func usageReductionRule(f facts) (domain.Insight, bool) {
	if f.usage.Change >= -usageChangeThreshold {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Kind:         domain.InsightKindInfo,
		Title:        "Usage Reduction",
		Description:  fmt.Sprintf("Great job! Your energy usage has decreased by %.1f%% compared to last month.", math.Abs(f.usage.Change)),
		Value:        ptr(f.usage.Current),
		CompareValue: ptr(f.usage.Previous),
		Change:       ptr(f.usage.Change),
	}, true
}

func dailyConsumptionRule(f facts) (domain.Insight, bool) {
	daily := utils.RoundWithTwoDecimalPlace(f.usage.AverageDaily)

	return domain.Insight{
		Kind:        domain.InsightKindInfo,
		Title:       "Daily Consumption",
		Description: fmt.Sprintf("Your average daily consumption is %s kWh.", strconv.FormatFloat(daily, 'f', -1, 64)),
		Value:       ptr(f.usage.AverageDaily),
	}, true
}

func mainCostDriverRule(f facts) (domain.Insight, bool) {
	return domain.Insight{
		Kind:         domain.InsightKindInfo,
		Title:        "Main Cost Driver",
		Description:  fmt.Sprintf("%s makes up %.1f%% of your total bill.", f.costs.LargestExpense, f.costs.Share),
		Value:        ptr(f.costs.LargestAmount),
		CompareValue: ptr(f.bill.TotalAmount),
	}, true
}

func rateTierRule(f facts) (domain.Insight, bool) {
	if f.bill.EnergyUsage <= rateTierUsageThreshold {
		return domain.Insight{}, false
	}

	tierTwo, ok := TierRate(f.bill.Rates, tierTwoName)
	if !ok {
		return domain.Insight{}, false
	}

	insight := domain.Insight{
		Kind:        domain.InsightKindTip,
		Title:       "Rate Tier Impact",
		Description: "Your usage has entered the higher rate tier, which increases your cost per kWh.",
		Value:       ptr(tierTwo),
	}
	if tierOne, ok := TierRate(f.bill.Rates, tierOneName); ok {
		insight.CompareValue = ptr(tierOne)
	}

	return insight, true
}

func solarEfficiencyRule(f facts) (domain.Insight, bool) {
	if f.solar == nil {
		return domain.Insight{}, false
	}

	kind := domain.InsightKindInfo
	if f.solar.Efficiency < lowEfficiencyThreshold {
		kind = domain.InsightKindWarning
	}

	return domain.Insight{
		Kind:         kind,
		Title:        "Solar Efficiency",
		Description:  fmt.Sprintf("Your solar panels are operating at %.1f%% efficiency compared to ideal forecasted production.", f.solar.Efficiency),
		Value:        ptr(f.solar.Efficiency),
		CompareValue: ptr(100),
	}, true
}

func optimizationRule(f facts) (domain.Insight, bool) {
	if f.solar == nil || f.solar.PotentialSavings <= potentialThreshold {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Kind:        domain.InsightKindTip,
		Title:       "Optimization Opportunity",
		Description: fmt.Sprintf("You could generate an additional %.0f kWh with optimal solar panel performance.", f.solar.PotentialSavings),
		Value:       ptr(f.solar.PotentialSavings),
	}, true
}

// TierRate procura a tarifa cujo nome contém o prefixo da faixa (ex: "Tier 2 (501+ kWh)").
// Com mais de uma candidata, vale a de menor nome.
func TierRate(rates map[string]float64, tier string) (float64, bool) {
	for _, name := range slices.Sorted(maps.Keys(rates)) {
		if strings.Contains(strings.ToLower(name), tier) {
			return rates[name], true
		}
	}
	return 0, false
}

func ptr(v float64) *float64 {
	return &v
}
