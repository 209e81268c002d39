package service

import (
	"math"

	"rental-yield/domain"
)

// yearDrivers are the indexed volume figures for one year.
type yearDrivers struct {
	revenue  float64
	bookings float64
}

func drivers(op domain.Operating, factor float64) yearDrivers {
	occupancy := op.Occupancy / 100
	if op.RevenueModel == domain.RevenueMonthly {
		return yearDrivers{
			revenue: op.MonthlyRent * MonthsPerYear * occupancy * factor,
		}
	}
	d := yearDrivers{
		revenue: DaysPerYear * occupancy * op.NightlyRate * factor,
	}
	if op.NightsPerBooking > 0 {
		d.bookings = DaysPerYear * occupancy / op.NightsPerBooking * factor
	}
	return d
}

// ProjectLedger builds the HorizonYears-row ledger. debt may be nil for an
// all-cash purchase; mortgage figures are taken as-is and never indexed.
func ProjectLedger(input domain.ScenarioInput, debt DebtSchedule) domain.Ledger {
	op := input.Operating
	guests := op.GuestsPerBooking
	if guests <= 0 {
		guests = DefaultGuestsPerBooking
	}

	ledger := make(domain.Ledger, 0, HorizonYears)
	cumulative := 0.0
	for j := 1; j <= HorizonYears; j++ {
		factor := math.Pow(1+op.Indexation/100, float64(j-1))
		d := drivers(op, factor)

		row := domain.ProjectionRow{
			Year:           j,
			Revenue:        d.revenue,
			AssociationFee: op.AssociationFee * factor,
			Management:     d.revenue * op.ManagementFee / 100,
			Maintenance:    input.PurchasePrice * op.Maintenance / 100 * factor,
			Energy:         op.EnergyMonthly * MonthsPerYear * factor,
			GroundLease:    op.GroundLease * factor,
		}
		if op.RevenueModel != domain.RevenueMonthly {
			row.Cleaning = d.bookings * op.CleaningFee
			row.TouristTax = d.bookings * op.NightsPerBooking * guests * op.TouristTax
		}

		ds := debt.For(j)
		row.MortgageInterest = ds.Interest
		row.PrincipalRepayment = ds.Principal
		row.RemainingDebt = ds.RemainingDebt

		row.TotalCosts = row.OperatingCosts() + row.MortgageInterest + row.PrincipalRepayment
		row.NetCashFlow = row.Revenue - row.TotalCosts
		cumulative += row.NetCashFlow
		row.CumulativeCashFlow = cumulative

		ledger = append(ledger, row)
	}
	return ledger
}
