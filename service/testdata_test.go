package service

import "rental-yield/domain"

// holidayHome is the reference all-cash scenario used across the tests.
func holidayHome() domain.ScenarioInput {
	return domain.ScenarioInput{
		PurchasePrice:    175000,
		AcquisitionCosts: 25000,
		Operating: domain.Operating{
			RevenueModel:     domain.RevenueNightly,
			NightlyRate:      138,
			Occupancy:        72,
			NightsPerBooking: 4,
			CleaningFee:      75,
			TouristTax:       2.3,
			AssociationFee:   2600,
			ManagementFee:    20,
			Maintenance:      1.8,
			EnergyMonthly:    180,
			Indexation:       2.5,
		},
	}
}

func financed(input domain.ScenarioInput, ltv float64, tranches ...domain.Tranche) domain.ScenarioInput {
	input.Financing = domain.Financing{
		Financed:    true,
		LoanToValue: ltv,
		Tranches:    tranches,
	}
	return input
}
