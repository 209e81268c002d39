package service

const (
	HorizonYears  = 30
	MonthsPerYear = 12
	DaysPerYear   = 365

	// DefaultGuestsPerBooking is the party size used for tourist tax when a
	// scenario does not set one.
	DefaultGuestsPerBooking = 3.0

	// approximateInterestDecay is the share of year-one interest that the
	// approximate annuity model has shed by the end of the term.
	approximateInterestDecay = 0.8
)
