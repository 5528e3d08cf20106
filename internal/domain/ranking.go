package domain

import (
	"fmt"
	"math"
	"time"
)

// CohortScope define a abrangência do grupo de comparação
type CohortScope string

const (
	CohortScopeNeighborhood CohortScope = "neighborhood"
	CohortScopeCity         CohortScope = "city"
)

// Valid indica se o escopo é conhecido
func (s CohortScope) Valid() bool {
	return s == CohortScopeNeighborhood || s == CohortScopeCity
}

// LocationBucket agrupa coordenadas em uma grade: 0.01° para bairro e 0.1° para cidade
func LocationBucket(lat, lon float64, scope CohortScope) string {
	if scope == CohortScopeCity {
		return fmt.Sprintf("city:%.1f:%.1f", math.Floor(lat*10)/10, math.Floor(lon*10)/10)
	}
	return fmt.Sprintf("nb:%.2f:%.2f", math.Floor(lat*100)/100, math.Floor(lon*100)/100)
}

// CohortQuery descreve o grupo de referência desejado
type CohortQuery struct {
	Scope            CohortScope
	Latitude         float64
	Longitude        float64
	Month            string
	ExcludeAccountID string
}

// RankingEntry é uma linha do ranking de desempenho solar
type RankingEntry struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Score              float64 `json:"score"`
	ActualGeneration   float64 `json:"actualGeneration"`
	ExpectedGeneration float64 `json:"expectedGeneration"`
	SystemSizeKW       float64 `json:"systemSize"`
	Location           string  `json:"location"`
	IsUser             bool    `json:"isUser"`
	Position           int     `json:"position"`
}

// PeerSubject é a entrada do próprio usuário na comparação
type PeerSubject struct {
	ID                 string
	Name               string
	ActualGeneration   float64
	ExpectedGeneration float64
	SystemSizeKW       float64
	Location           string
}

// PeerComparison é o resultado do comparador
type PeerComparison struct {
	Rank             int            `json:"rank"`
	Total            int            `json:"total"`
	Score            float64        `json:"score"`
	MissedGeneration float64        `json:"missedGeneration"`
	LossPercentage   float64        `json:"lossPercentage"`
	TopGeneration    float64        `json:"topGeneration"`
	Band             string         `json:"band"`
	NeighborhoodRank string         `json:"neighborhoodRank"`
	Entries          []RankingEntry `json:"entries"`
}

type SolarRankingResponse struct {
	Bucket     string             `json:"bucket"`
	Month      string             `json:"month"`
	Ranking    []SolarRankingItem `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}

// SolarRankingItem é a posição armazenada de uma conta no ranking do bairro
type SolarRankingItem struct {
	ID                 int       `json:"id"`
	AccountID          string    `json:"account_id"`
	Bucket             string    `json:"bucket"`
	Month              string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	CustomerName       string    `json:"customer_name"`
	Score              float64   `json:"score"`
	ActualGeneration   float64   `json:"actual_generation"`
	ExpectedGeneration float64   `json:"expected_generation"`
	Position           int       `json:"position"`
	PositionChange     int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition   int       `json:"previous_position"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
