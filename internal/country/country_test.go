package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sells-group/acceptance-map/internal/model"
)

func TestGeoCode_Table(t *testing.T) {
	members := Members()
	require.Len(t, members, 27)

	for _, code := range members {
		r := GeoCode(code)
		assert.True(t, r.IsResolved(), code)
		assert.Len(t, r.Value, 3, code)
		assert.Equal(t, code, r.Original)
	}

	assert.Equal(t, "BEL", GeoCode("BE").Value)
	assert.Equal(t, "DEU", GeoCode("DE").Value)
	assert.Equal(t, "FRA", GeoCode("FR").Value)
	assert.Equal(t, "GRC", GeoCode("GR").Value)
}

func TestGeoCode_MatchesCLDR(t *testing.T) {
	for _, code := range Members() {
		region, err := language.ParseRegion(code)
		require.NoError(t, err, code)
		assert.Equal(t, region.ISO3(), GeoCode(code).Value, code)
	}
}

func TestGeoCode_OutsideTable(t *testing.T) {
	for _, code := range []string{"XK", "GB", "NO", "", "be"} {
		r := GeoCode(code)
		assert.False(t, r.IsResolved(), code)
		assert.True(t, r.IsMissing(), code)
		assert.Equal(t, code, r.Original)
	}
}

func TestGeoCode_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, GeoCode("PT"), GeoCode("PT"))
		assert.Equal(t, GeoCode("XK"), GeoCode("XK"))
	}
}

func TestName_Resolved(t *testing.T) {
	tests := map[string]string{
		"BE": "Belgium",
		"DE": "Germany",
		"FR": "France",
		"SE": "Sweden",
	}
	for code, want := range tests {
		r := Name(code)
		assert.True(t, r.IsResolved(), code)
		assert.Equal(t, want, r.Value)
	}
}

func TestName_AllMembersResolve(t *testing.T) {
	for _, code := range Members() {
		r := Name(code)
		assert.True(t, r.IsResolved(), code)
		assert.NotEqual(t, code, r.Value)
	}
}

func TestName_Fallback(t *testing.T) {
	for _, code := range []string{"", "ZZ", "B", "BEL", "1!"} {
		r := Name(code)
		assert.False(t, r.IsResolved(), code)
		assert.Equal(t, code, r.Value, "fallback keeps raw code")
	}
}

func TestName_NonISOCodesFallBack(t *testing.T) {
	// Aliases, user-assigned ranges and groupings have CLDR names but are not
	// ISO 3166-1 countries.
	for _, code := range []string{"XK", "UK", "EZ", "EU", "UN", "AA", "QM", "QO", "QZ", "XA", "xk"} {
		assert.Equal(t, model.Fallback(code, code), Name(code), code)
	}
}

func TestName_LowercaseCountryResolves(t *testing.T) {
	r := Name("gb")
	assert.True(t, r.IsResolved())
	assert.Equal(t, "United Kingdom", r.Value)
}
