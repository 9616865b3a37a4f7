package config

type Pricing struct {
	// BaseRate is the per-occupant reference price for the standard
	// distance tier, in currency units of the hosting marketplace.
	BaseRate            float64 `env:"PRICING_BASE_RATE" envDefault:"10000"`
	PriceFloor          float64 `env:"PRICING_PRICE_FLOOR" envDefault:"1000"`
	AnnualInflationRate float64 `env:"PRICING_ANNUAL_INFLATION_RATE" envDefault:"0.08"`

	// UniversityRates overrides the reference rate per university, e.g.
	// "University of Colombo:12000,University of Jaffna:8500".
	UniversityRates map[string]float64 `env:"PRICING_UNIVERSITY_RATES" envSeparator:"," envKeyValSeparator:":"`
}
