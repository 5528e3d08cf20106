package domain

import "time"

// AnalysisOptions são os parâmetros fornecidos pelo chamador de uma análise.
// A credencial do provedor solar vem sempre daqui, nunca de estado global.
type AnalysisOptions struct {
	SolarAPIKey      string
	SystemCapacityKW float64
	CohortScope      CohortScope
	SkipComparison   bool

	// Requester é o portador do token. Quando presente, só pode analisar contas a que tem acesso.
	Requester *Claims
}

// AnalysisRecord é o registro persistido de uma análise (ficha do cliente)
type AnalysisRecord struct {
	ID                 string         `json:"id"`
	AccountID          string         `json:"account_id"`
	CustomerName       string         `json:"customer_name"`
	Address            string         `json:"address"`
	Month              string         `json:"month"`
	Consumption        float64        `json:"consumption"`
	Generation         float64        `json:"generation"`
	Savings            float64        `json:"savings"`
	NeighborhoodRank   string         `json:"neigh_rank"`
	TopGeneration      float64        `json:"top_gen"`
	MissedSavings      float64        `json:"missed_savings"`
	Latitude           float64        `json:"lat"`
	Longitude          float64        `json:"lon"`
	NeighborhoodBucket string         `json:"neighborhood_bucket"`
	CityBucket         string         `json:"city_bucket"`
	BillingMode        string         `json:"billing_mode"`
	SystemSizeKW       float64        `json:"system_size_kw"`
	TotalForecast      float64        `json:"total_dni"`
	Efficiency         float64        `json:"efficiency"`
	Bundle             *InsightBundle `json:"bundle"`
	CreatedAt          time.Time      `json:"created_at"`
}

const (
	BillingModeNetMetering = "Net Metering"
	BillingModeStandard    = "Standard"
)

// AnalysisResponse é a resposta da API para uma análise concluída
type AnalysisResponse struct {
	ID     string         `json:"id,omitempty"`
	Bundle *InsightBundle `json:"bundle"`
}
