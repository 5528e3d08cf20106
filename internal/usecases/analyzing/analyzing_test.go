package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bill-insights-api/internal/domain"
)

func TestAnalyzeUsage(t *testing.T) {
	tests := []struct {
		name           string
		current        float64
		previous       float64
		expectedChange float64
	}{
		{name: "aumento de consumo", current: 450, previous: 380, expectedChange: 18.421052631578945},
		{name: "redução de consumo", current: 300, previous: 400, expectedChange: -25},
		{name: "consumo igual ao anterior", current: 275.5, previous: 275.5, expectedChange: 0},
		{name: "consumo anterior zero", current: 120, previous: 0, expectedChange: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := AnalyzeUsage(domain.BillRecord{
				EnergyUsage:       tt.current,
				PreviousUsage:     tt.previous,
				AverageDailyUsage: 12,
			})

			assert.InDelta(t, tt.expectedChange, usage.Change, 1e-9)
			assert.Equal(t, tt.current, usage.Current)
			assert.Equal(t, tt.previous, usage.Previous)
			assert.Equal(t, 12.0, usage.AverageDaily)
		})
	}
}

func TestAnalyzeCost(t *testing.T) {
	tests := []struct {
		name            string
		charges         map[string]float64
		total           float64
		expectedLargest string
		expectedAmount  float64
		expectedShare   float64
	}{
		{
			name:            "categoria dominante",
			charges:         map[string]float64{"Energy Charge": 95.5, "Delivery": 30, "Taxes": 10},
			total:           135.5,
			expectedLargest: "Energy Charge",
			expectedAmount:  95.5,
			expectedShare:   70.4797047970480,
		},
		{
			name:            "sem detalhamento de cobranças",
			charges:         map[string]float64{},
			total:           100,
			expectedLargest: UncategorizedExpense,
			expectedAmount:  0,
			expectedShare:   0,
		},
		{
			name:            "cobranças nulas",
			charges:         nil,
			total:           100,
			expectedLargest: UncategorizedExpense,
		},
		{
			name:            "total zero",
			charges:         map[string]float64{"Energy": 10},
			total:           0,
			expectedLargest: "Energy",
			expectedAmount:  10,
			expectedShare:   0,
		},
		{
			name:            "categoria maior que o total é limitada a 100%",
			charges:         map[string]float64{"Energy": 150},
			total:           100,
			expectedLargest: "Energy",
			expectedAmount:  150,
			expectedShare:   100,
		},
		{
			name:            "empate fica com o menor nome",
			charges:         map[string]float64{"Taxes": 50, "Delivery": 50},
			total:           100,
			expectedLargest: "Delivery",
			expectedAmount:  50,
			expectedShare:   50,
		},
		{
			name:            "todas as cobranças zeradas",
			charges:         map[string]float64{"Energy": 0},
			total:           20,
			expectedLargest: "Energy",
			expectedAmount:  0,
			expectedShare:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := AnalyzeCost(domain.BillRecord{Charges: tt.charges, TotalAmount: tt.total})

			assert.Equal(t, tt.expectedLargest, cost.LargestExpense)
			assert.Equal(t, tt.expectedAmount, cost.LargestAmount)
			assert.InDelta(t, tt.expectedShare, cost.Share, 1e-9)
			assert.GreaterOrEqual(t, cost.Share, 0.0)
			assert.LessOrEqual(t, cost.Share, 100.0)
			assert.NotNil(t, cost.Breakdown)
			assert.Len(t, cost.Categories, len(tt.charges))
		})
	}
}

func TestAnalyzeCost_CategoriasOrdenadasPorValor(t *testing.T) {
	charges := map[string]float64{"Taxes": 10, "Energy": 80, "Delivery": 10}

	cost := AnalyzeCost(domain.BillRecord{Charges: charges, TotalAmount: 100})

	require.Len(t, cost.Categories, 3)
	assert.Equal(t, "Energy", cost.Categories[0].Category)
	assert.Equal(t, "Delivery", cost.Categories[1].Category)
	assert.Equal(t, "Taxes", cost.Categories[2].Category)
	assert.Equal(t, 80.0, cost.Categories[0].Share)
}

func TestAnalyzeCost_NaoAlteraCobrancasDaConta(t *testing.T) {
	charges := map[string]float64{"Energy": 80}

	cost := AnalyzeCost(domain.BillRecord{Charges: charges, TotalAmount: 100})
	cost.Breakdown["Energy"] = 1

	assert.Equal(t, 80.0, charges["Energy"])
}
