package documents

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cantinadirect/shipping-backend/internal/types"
)

// packageCSVHeader mirrors the raw field names literally.
var packageCSVHeader = []string{
	"package_id", "shipment_id", "length_cm", "width_cm", "height_cm", "weight_kg", "contents",
}

// PackagesCSV renders the package records as semicolon-delimited text.
// Quoting (double quotes around any field containing a separator, quote or
// newline) is the csv writer's standard behavior.
func PackagesCSV(packages []types.Package) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(packageCSVHeader); err != nil {
		return "", err
	}
	for _, p := range packages {
		rec := []string{
			p.ID,
			p.ShipmentID,
			csvFloat(p.LengthCm),
			csvFloat(p.WidthCm),
			csvFloat(p.HeightCm),
			csvFloat(p.WeightKg),
			p.Contents,
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
