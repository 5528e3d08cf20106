package insighting

import (
	"github.com/vfg2006/bill-insights-api/internal/domain"
	"github.com/vfg2006/bill-insights-api/pkg/utils"
)

// NewAnalysisRecord monta a ficha persistida de uma análise
func NewAnalysisRecord(id string, analysis *Analysis) *domain.AnalysisRecord {
	bill := analysis.Bill
	bundle := analysis.Bundle

	record := &domain.AnalysisRecord{
		ID:           id,
		AccountID:    bill.AccountID,
		CustomerName: bill.CustomerName,
		Address:      bill.Address,
		Consumption:  bill.EnergyUsage,
		Generation:   bill.SolarGeneration,
		SystemSizeKW: bill.SystemSizeKW,
		BillingMode:  domain.BillingModeStandard,
		Bundle:       bundle,
	}

	if bill.BillingPeriod.Period != nil {
		record.Month = bill.BillingPeriod.Period.Month()
	}

	if bill.HasSolar() {
		record.BillingMode = domain.BillingModeNetMetering
	}

	if tierOne, ok := TierRate(bill.Rates, tierOneName); ok {
		record.Savings = utils.RoundWithTwoDecimalPlace(bill.SolarGeneration * tierOne)
	}

	if bill.Location.Known {
		record.Latitude = bill.Location.Latitude
		record.Longitude = bill.Location.Longitude
		record.NeighborhoodBucket = domain.LocationBucket(bill.Location.Latitude, bill.Location.Longitude, domain.CohortScopeNeighborhood)
		record.CityBucket = domain.LocationBucket(bill.Location.Latitude, bill.Location.Longitude, domain.CohortScopeCity)
	}

	if bundle == nil {
		return record
	}

	if bundle.Solar != nil {
		record.TotalForecast = bundle.Solar.IdealGeneration
		record.Efficiency = utils.RoundWithTwoDecimalPlace(bundle.Solar.Efficiency)
		record.MissedSavings = utils.RoundWithTwoDecimalPlace(bundle.Solar.PotentialSavings)
	}

	if bundle.Comparison != nil {
		record.NeighborhoodRank = bundle.Comparison.NeighborhoodRank
		record.TopGeneration = bundle.Comparison.TopGeneration
	}

	return record
}
