package service

// countryNames covers the regions the API reports by display name.
// Anything else echoes the region code
var countryNames = map[string]string{
	"FR": "France",
	"GB": "United Kingdom",
	"US": "United States",
	"DE": "Germany",
	"ES": "Spain",
	"IT": "Italy",
	"CA": "Canada",
	"AU": "Australia",
	"JP": "Japan",
	"CN": "China",
}

// countryTimezones is a coarse region to primary timezone mapping
var countryTimezones = map[string]string{
	"FR": "Europe/Paris",
	"GB": "Europe/London",
	"US": "America/New_York",
	"DE": "Europe/Berlin",
	"ES": "Europe/Madrid",
	"IT": "Europe/Rome",
	"CA": "America/Toronto",
	"AU": "Australia/Sydney",
	"JP": "Asia/Tokyo",
	"CN": "Asia/Shanghai",
}

func countryName(region string) string {
	if name, ok := countryNames[region]; ok {
		return name
	}
	return region
}

func timezoneFor(region string) string {
	if tz, ok := countryTimezones[region]; ok {
		return tz
	}
	return "UTC"
}
