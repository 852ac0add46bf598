package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestYearKey_String tests single and comparison rendering
func TestYearKey_String(t *testing.T) {
	assert.Equal(t, "2023", Year(2023).String())
	assert.Equal(t, "2020_2023", YearSpan(2020, 2023).String())
}

// TestYearKey_IsComparison tests the comparison flag
func TestYearKey_IsComparison(t *testing.T) {
	assert.False(t, Year(2023).IsComparison())
	assert.True(t, YearSpan(2020, 2023).IsComparison())
}

// TestYearKey_Less tests deterministic ordering
func TestYearKey_Less(t *testing.T) {
	assert.True(t, Year(2020).Less(Year(2023)))
	assert.True(t, Year(2020).Less(YearSpan(2020, 2023)))
	assert.False(t, YearSpan(2020, 2023).Less(Year(2020)))
	assert.False(t, Year(2023).Less(Year(2023)))
}

// TestArtifactKey_Less tests ordering by kind then years
func TestArtifactKey_Less(t *testing.T) {
	hansen := ArtifactKey{AnalysisKind: "hansen", Years: Year(2023)}
	mapbiomas := ArtifactKey{AnalysisKind: "mapbiomas", Years: Year(2020)}
	mapbiomasLater := ArtifactKey{AnalysisKind: "mapbiomas", Years: Year(2023)}

	assert.True(t, hansen.Less(mapbiomas))
	assert.True(t, mapbiomas.Less(mapbiomasLater))
	assert.False(t, mapbiomasLater.Less(hansen))
}

// TestArtifactKey_Comparable tests keys work as map keys
func TestArtifactKey_Comparable(t *testing.T) {
	m := map[ArtifactKey]int{}
	k1 := ArtifactKey{AnalysisKind: "mapbiomas", Years: Year(2023)}
	k2 := ArtifactKey{AnalysisKind: "mapbiomas", Years: Year(2023)}

	m[k1] = 1
	m[k2] = 2

	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[k1])
}
