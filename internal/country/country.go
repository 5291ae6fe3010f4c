// Package country resolves ISO 3166-1 alpha-2 codes to display names and to
// the alpha-3 codes the choropleth map is keyed by.
package country

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/sells-group/acceptance-map/internal/model"
)

// alpha3 covers the 27 EU member states. It is hand-maintained: codes outside
// it cannot be placed on the map.
var alpha3 = map[string]string{
	"BE": "BEL", "BG": "BGR", "CZ": "CZE", "DK": "DNK", "DE": "DEU",
	"EE": "EST", "IE": "IRL", "GR": "GRC", "ES": "ESP", "FR": "FRA",
	"HR": "HRV", "IT": "ITA", "CY": "CYP", "LV": "LVA", "LT": "LTU",
	"LU": "LUX", "HU": "HUN", "MT": "MLT", "NL": "NLD", "AT": "AUT",
	"PL": "POL", "PT": "PRT", "RO": "ROU", "SI": "SVN", "SK": "SVK",
	"FI": "FIN", "SE": "SWE",
}

var regionNames = display.Regions(language.English)

// GeoCode resolves code through the fixed EU table. Codes outside the table
// fall back to an empty value.
func GeoCode(code string) model.Resolution {
	if a3, ok := alpha3[code]; ok {
		return model.Resolved(a3, code)
	}
	return model.Fallback("", code)
}

// Name resolves code to its English short name using CLDR region data.
// Only assigned ISO 3166-1 codes resolve: aliases (UK), user-assigned codes
// (XK, QO) and grouping codes (EU, EZ, UN) fall back to code itself.
func Name(code string) model.Resolution {
	if len(code) != 2 || notCountry(strings.ToUpper(code)) {
		return model.Fallback(code, code)
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() || region.String() != strings.ToUpper(code) {
		return model.Fallback(code, code)
	}
	name := regionNames.Name(region)
	if name == "" || strings.EqualFold(name, "Unknown Region") {
		return model.Fallback(code, code)
	}
	return model.Resolved(name, code)
}

// groupings are reserved codes that CLDR names but ISO 3166-1 does not
// assign to any country.
var groupings = map[string]bool{"EU": true, "EZ": true, "UN": true}

// notCountry reports whether upper is a user-assigned or grouping code.
func notCountry(upper string) bool {
	if groupings[upper] {
		return true
	}
	switch {
	case upper == "AA", upper == "ZZ":
		return true
	case upper[0] == 'Q' && upper[1] >= 'M' && upper[1] <= 'Z':
		return true
	case upper[0] == 'X':
		return true
	}
	return false
}

// Members returns the alpha-2 codes of the geo table, sorted.
func Members() []string {
	codes := make([]string, 0, len(alpha3))
	for c := range alpha3 {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
