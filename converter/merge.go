package converter

import (
	"strconv"
	"strings"
)

// isBlank reports whether a cell holds no usable value.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// firstNonBlank resolves the first non-blank value of column across rows,
// in row order. Returns "" when every cell is blank or the column is
// missing. This is the universal merge rule for shared attributes.
func firstNonBlank(t *Table, rows []int, column string) string {
	if !t.HasColumn(column) {
		return ""
	}
	for _, r := range rows {
		if v := t.Cell(r, column); !isBlank(v) {
			return v
		}
	}
	return ""
}

// anyNonBlank reports whether column has at least one non-blank value
// across rows.
func anyNonBlank(t *Table, rows []int, column string) bool {
	return firstNonBlank(t, rows, column) != ""
}

// parsePrice parses a price cell as a decimal number. Malformed cells are
// treated as absent (zero) and processing continues.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseQuantity parses an inventory cell as an integer. Spreadsheet tools
// often render quantities as floats ("10.0"), so a float parse is accepted
// as fallback. Malformed cells are treated as absent (zero).
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// variantFields accumulates the per-variant merge fields with
// first-non-blank-wins semantics, shared by the simple-product path (over
// the whole handle group) and the per-bucket path.
//
// Zero counts as absent for the numeric fields: a true zero price or a
// zero-stock row is indistinguishable from a blank cell and later rows may
// override it. The ikas migration depends on this observed behavior, so it
// is preserved rather than fixed.
type variantFields struct {
	sku           string
	barcode       string
	salePrice     float64
	discountPrice float64
	stock         int
}

// absorb merges row into the accumulated fields.
func (f *variantFields) absorb(t *Table, row int) {
	if f.sku == "" {
		if v := strings.TrimSpace(t.Cell(row, ColVariantSKU)); v != "" {
			f.sku = v
		}
	}
	if f.barcode == "" {
		if v := t.Cell(row, ColVariantBarcode); !isBlank(v) {
			f.barcode = v
		} else if v := t.Cell(row, ColBarcode); !isBlank(v) {
			f.barcode = v
		}
	}
	if f.salePrice == 0 {
		f.salePrice = parsePrice(t.Cell(row, ColVariantPrice))
	}
	if f.discountPrice == 0 {
		if v := t.Cell(row, ColCompareAtPrice); !isBlank(v) {
			f.discountPrice = parsePrice(v)
		} else {
			f.discountPrice = parsePrice(t.Cell(row, ColVariantCompareAtPrice))
		}
	}
	if f.stock == 0 {
		f.stock = parseQuantity(t.Cell(row, ColVariantInventoryQty))
	}
}

// mergeGroupFields merges every row of a handle group into one set of
// variant fields. Used for simple products and the empty-bucket fallback.
func mergeGroupFields(t *Table, rows []int) variantFields {
	var f variantFields
	for _, r := range rows {
		f.absorb(t, r)
	}
	return f
}

// formatPrice renders a price for the output table.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
