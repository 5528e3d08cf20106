package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/internal/usecases/analyzing"
)

func titles(insights []domain.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, insight := range insights {
		out = append(out, insight.Title)
	}
	return out
}

func synthesizeBill(bill domain.BillRecord, solar *domain.SolarEfficiency) []domain.Insight {
	return Synthesize(bill, analyzing.AnalyzeUsage(bill), analyzing.AnalyzeCost(bill), solar)
}

func TestSynthesize(t *testing.T) {
	base := domain.BillRecord{
		TotalAmount:       100,
		EnergyUsage:       300,
		PreviousUsage:     300,
		AverageDailyUsage: 10,
		Charges:           map[string]float64{"Energy Charge": 80, "Taxes": 20},
	}

	tests := []struct {
		name       string
		mutate     func(b *domain.BillRecord)
		solar      *domain.SolarEfficiency
		wantTitles []string
		validate   func(t *testing.T, insights []domain.Insight)
	}{
		{
			name: "aumento de 18,42% no consumo gera alerta",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 450
				b.PreviousUsage = 380
			},
			wantTitles: []string{"Usage Increase Alert", "Daily Consumption", "Main Cost Driver"},
			validate: func(t *testing.T, insights []domain.Insight) {
				alert := insights[0]
				assert.Equal(t, domain.InsightKindWarning, alert.Kind)
				require.NotNil(t, alert.Change)
				assert.InDelta(t, 18.42, *alert.Change, 0.01)
				assert.Equal(t, 450.0, *alert.Value)
				assert.Equal(t, 380.0, *alert.CompareValue)
				assert.Equal(t, "Your energy usage has increased by 18.4% compared to last month.", alert.Description)
			},
		},
		{
			name: "Redução acima de 10% gera insight positivo",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 200
				b.PreviousUsage = 250
			},
			wantTitles: []string{"Usage Reduction", "Daily Consumption", "Main Cost Driver"},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, domain.InsightKindInfo, insights[0].Kind)
				assert.Equal(t, "Great job! Your energy usage has decreased by 20.0% compared to last month.", insights[0].Description)
			},
		},
		{
			name: "Variação de exatamente 10% não gera alerta",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 330
				b.PreviousUsage = 300
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver"},
		},
		{
			name: "eficiência de 85,33% gera alerta de potencial de 55 kWh",
			solar: &domain.SolarEfficiency{
				Efficiency:       320.0 / 375.0 * 100,
				IdealGeneration:  375,
				ActualGeneration: 320,
				PotentialSavings: 55,
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver", "Solar Efficiency", "Optimization Opportunity"},
			validate: func(t *testing.T, insights []domain.Insight) {
				efficiency := insights[2]
				assert.Equal(t, domain.InsightKindInfo, efficiency.Kind)
				assert.Equal(t, "Your solar panels are operating at 85.3% efficiency compared to ideal forecasted production.", efficiency.Description)
				assert.Equal(t, 100.0, *efficiency.CompareValue)

				tip := insights[3]
				assert.Equal(t, domain.InsightKindTip, tip.Kind)
				assert.Equal(t, "You could generate an additional 55 kWh with optimal solar panel performance.", tip.Description)
			},
		},
		{
			name:       "Eficiência abaixo de 70% vira alerta sem dica quando o potencial é pequeno",
			solar:      &domain.SolarEfficiency{Efficiency: 60, IdealGeneration: 100, ActualGeneration: 60, PotentialSavings: 40},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver", "Solar Efficiency"},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, domain.InsightKindWarning, insights[2].Kind)
			},
		},
		{
			name:       "Potencial de exatamente 50 kWh não gera dica",
			solar:      &domain.SolarEfficiency{Efficiency: 80, IdealGeneration: 250, ActualGeneration: 200, PotentialSavings: 50},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver", "Solar Efficiency"},
		},
		{
			name: "sem cobranças o principal custo é Uncategorized",
			mutate: func(b *domain.BillRecord) {
				b.Charges = map[string]float64{}
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver"},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, "Uncategorized makes up 0.0% of your total bill.", insights[1].Description)
				assert.Equal(t, 0.0, *insights[1].Value)
			},
		},
		{
			name: "Consumo acima de 500 kWh com faixa 2 gera dica de tarifa",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 600
				b.PreviousUsage = 600
				b.Rates = map[string]float64{"Tier 1 (0-500 kWh)": 0.12, "Tier 2 (501+ kWh)": 0.18}
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver", "Rate Tier Impact"},
			validate: func(t *testing.T, insights []domain.Insight) {
				tier := insights[2]
				assert.Equal(t, domain.InsightKindTip, tier.Kind)
				assert.Equal(t, 0.18, *tier.Value)
				assert.Equal(t, 0.12, *tier.CompareValue)
			},
		},
		{
			name: "Consumo acima de 500 kWh sem faixa 2 não gera dica",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 600
				b.PreviousUsage = 600
				b.Rates = map[string]float64{"Flat": 0.15}
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver"},
		},
		{
			name: "Faixa 2 sem faixa 1 não informa valor de comparação",
			mutate: func(b *domain.BillRecord) {
				b.EnergyUsage = 501
				b.PreviousUsage = 501
				b.Rates = map[string]float64{"TIER 2": 0.2}
			},
			wantTitles: []string{"Daily Consumption", "Main Cost Driver", "Rate Tier Impact"},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Nil(t, insights[2].CompareValue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := base
			bill.Charges = map[string]float64{"Energy Charge": 80, "Taxes": 20}
			if tt.mutate != nil {
				tt.mutate(&bill)
			}

			insights := synthesizeBill(bill, tt.solar)

			assert.Equal(t, tt.wantTitles, titles(insights))
			if tt.validate != nil {
				tt.validate(t, insights)
			}
		})
	}
}

func TestSynthesize_DescricaoConsumoDiario(t *testing.T) {
	bill := domain.BillRecord{TotalAmount: 10, EnergyUsage: 100, PreviousUsage: 100, AverageDailyUsage: 100.0 / 30}

	insights := synthesizeBill(bill, nil)

	assert.Equal(t, "Your average daily consumption is 3.33 kWh.", insights[0].Description)
}

func TestTierRate(t *testing.T) {
	rates := map[string]float64{"Tier 2 (501+ kWh)": 0.18, "tier 1": 0.12}

	rate, ok := TierRate(rates, tierOneName)
	assert.True(t, ok)
	assert.Equal(t, 0.12, rate)

	_, ok = TierRate(nil, tierTwoName)
	assert.False(t, ok)
}
