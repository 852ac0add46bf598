package domain

import "strconv"

// YearKey encodes the year dimension of an analysis: either a single
// year or an ordered year pair for a change comparison.
type YearKey struct {
	// Start is the (first) analysis year.
	Start int

	// End is the second year of a comparison, or zero for a single-year
	// analysis.
	End int
}

// Year returns a single-year key.
func Year(y int) YearKey {
	return YearKey{Start: y}
}

// YearSpan returns a comparison key over two years.
func YearSpan(start, end int) YearKey {
	return YearKey{Start: start, End: end}
}

// IsComparison reports whether the key spans two years.
func (y YearKey) IsComparison() bool {
	return y.End != 0
}

// String renders "2023" for a single year and "2020_2023" for a span.
func (y YearKey) String() string {
	s := strconv.Itoa(y.Start)
	if y.End != 0 {
		s += "_" + strconv.Itoa(y.End)
	}
	return s
}

// Less orders year keys for deterministic export layout.
func (y YearKey) Less(other YearKey) bool {
	if y.Start != other.Start {
		return y.Start < other.Start
	}
	return y.End < other.End
}

// ArtifactKey identifies one analysis run against one region. Writes
// with the same key overwrite in place.
type ArtifactKey struct {
	// AnalysisKind is the dataset identifier, e.g. "mapbiomas" or
	// "hansen".
	AnalysisKind string

	// Years is the single year or year pair analyzed.
	Years YearKey
}

// Less orders keys by analysis kind then year key.
func (k ArtifactKey) Less(other ArtifactKey) bool {
	if k.AnalysisKind != other.AnalysisKind {
		return k.AnalysisKind < other.AnalysisKind
	}
	return k.Years.Less(other.Years)
}

// TableRow is one land-cover class line of an analysis table.
type TableRow struct {
	ClassID    int
	ClassName  string
	PixelCount int64
	AreaHa     float64
	Percentage float64
}

// Table is the ordered tabular result of one analysis.
type Table []TableRow

// Figure is one rendered chart, consumed as an opaque PNG blob.
type Figure struct {
	// Name distinguishes multiple figures of one artifact. Optional.
	Name string

	// PNG is the encoded image.
	PNG []byte
}

// Artifact is the output of one analysis run against one region.
type Artifact struct {
	// RegionID links to the analyzed Region.
	RegionID string

	// Key identifies the analysis within the region.
	Key ArtifactKey

	// Table holds the class breakdown rows.
	Table Table

	// Figures holds zero or more rendered charts.
	Figures []Figure
}
