package zipexport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image/png"
	"math"
	"strconv"

	"github.com/yvynation/zonepack/internal/core/domain"
)

// tableHeader matches the column order of the analysis tables shown in
// the dashboard.
var tableHeader = []string{"class_id", "class_name", "pixel_count", "area_ha", "percentage"}

// encodeTable renders the class breakdown as CSV. Rows carrying
// non-finite numbers are malformed and fail the whole table.
func encodeTable(table domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(tableHeader); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactSerialization, err)
	}
	for i, row := range table {
		if !isFinite(row.AreaHa) || !isFinite(row.Percentage) {
			return nil, fmt.Errorf("%w: row %d has non-finite values", domain.ErrArtifactSerialization, i)
		}
		record := []string{
			strconv.Itoa(row.ClassID),
			row.ClassName,
			strconv.FormatInt(row.PixelCount, 10),
			strconv.FormatFloat(row.AreaHa, 'f', 2, 64),
			strconv.FormatFloat(row.Percentage, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArtifactSerialization, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactSerialization, err)
	}
	return buf.Bytes(), nil
}

// validatePNG confirms a figure blob is a decodable PNG before it is
// placed in the archive.
func validatePNG(blob []byte) error {
	if len(blob) == 0 {
		return fmt.Errorf("%w: empty figure", domain.ErrArtifactSerialization)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(blob)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArtifactSerialization, err)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
