package service

// layout describes where bank, branch and account live inside a national IBAN.
// minLen guards the slicing against truncated input; end -1 means "to the end"
type layout struct {
	minLen                 int
	bankLo, bankHi         int
	branchLo, branchHi     int
	accountLo              int
}

// layouts covers the countries whose BBAN structure the API decomposes.
// Everything else falls back to account=[4:]
var layouts = map[string]layout{
	// FR76 3000 6000 0112 3456 7890 189
	"FR": {minLen: 14, bankLo: 4, bankHi: 9, branchLo: 9, branchHi: 14, accountLo: 14},
	// DE89 3704 0044 0532 0130 00 (no branch code)
	"DE": {minLen: 18, bankLo: 4, bankHi: 12, accountLo: 12},
	// GB82 WEST 1234 5698 7654 32
	"GB": {minLen: 18, bankLo: 4, bankHi: 8, branchLo: 8, branchHi: 14, accountLo: 14},
	// ES91 2100 0418 4502 0005 1332
	"ES": {minLen: 14, bankLo: 4, bankHi: 8, branchLo: 8, branchHi: 12, accountLo: 12},
}

// countryNames covers the SEPA countries the API reports by display name.
// Anything else echoes the country code
var countryNames = map[string]string{
	"FR": "France",
	"DE": "Germany",
	"GB": "United Kingdom",
	"ES": "Spain",
	"IT": "Italy",
	"NL": "Netherlands",
	"BE": "Belgium",
	"CH": "Switzerland",
	"AT": "Austria",
	"PT": "Portugal",
	"IE": "Ireland",
	"PL": "Poland",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
}

func countryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
