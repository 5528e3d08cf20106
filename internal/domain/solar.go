package domain

// SolarEfficiency é o resultado do cálculo de eficiência solar do período
type SolarEfficiency struct {
	Efficiency       float64 `json:"efficiency"`
	IdealGeneration  float64 `json:"idealGeneration"`
	ActualGeneration float64 `json:"actualGeneration"`
	PotentialSavings float64 `json:"potentialSavings"`
	EstimatedActual  float64 `json:"estimatedActual"`
}
