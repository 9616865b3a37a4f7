package pricing

import "time"

// Seasonal multipliers follow the academic calendar: the May/June intake
// carries a premium, term breaks a discount. Values are relative to a
// neutral month (1.00).
var seasonalFactors = map[time.Month]float64{
	time.January:   1.00,
	time.February:  1.00,
	time.March:     0.92,
	time.April:     1.05,
	time.May:       1.15,
	time.June:      1.10,
	time.July:      1.02,
	time.August:    1.02,
	time.September: 0.98,
	time.October:   0.90,
	time.November:  1.05,
	time.December:  1.00,
}

var seasonalReasons = map[time.Month]string{
	time.January:   "Mid academic year, moderate demand",
	time.February:  "Mid academic year, stable demand",
	time.March:     "End of academic year, lower demand",
	time.April:     "University admissions period, increasing demand",
	time.May:       "Start of new academic year, peak demand",
	time.June:      "Early academic term, high demand",
	time.July:      "Mid-term period, stable demand",
	time.August:    "Mid-term period, stable demand",
	time.September: "End of term approaching, moderate demand",
	time.October:   "Term break, lower demand",
	time.November:  "Start of final term, demand picking up",
	time.December:  "End of year examinations, moderate demand",
}

// SeasonalFactor returns the demand multiplier for a month. The table covers
// all twelve months; the fallback exists only to keep the function total.
func SeasonalFactor(month time.Month) float64 {
	if f, ok := seasonalFactors[month]; ok {
		return f
	}
	return 1.00
}

// SeasonalReason names the dominant demand driver for a month.
func SeasonalReason(month time.Month) string {
	if r, ok := seasonalReasons[month]; ok {
		return r
	}
	return "Regular season"
}
