package converter

import "strings"

// defaultTitle is Shopify's sentinel option value for products without a
// real variant axis. Compared case-insensitively after trimming.
const defaultTitle = "DEFAULT TITLE"

// variantKeyKind distinguishes the two identity strategies for a variant
// row: by normalized option values, or by SKU when no option value exists.
type variantKeyKind int

const (
	keyByOptions variantKeyKind = iota
	keyBySKU
)

// variantKey identifies one distinct variant combination within a handle.
// Option values are normalized (trimmed, uppercased, "Default Title"
// suppressed to blank) so that "S", "s " and "S" collapse to one key. The
// SKU form keeps the exact trimmed SKU.
type variantKey struct {
	kind             variantKeyKind
	option1, option2 string
	sku              string
}

// variantBucket collects the rows of one variant combination. The option
// values keep the original spelling of the first row that produced the
// key; the merged fields follow first-non-blank-wins over member rows.
type variantBucket struct {
	option1, option2 string
	fields           variantFields
}

// normalizeOption trims an option value and suppresses the "Default Title"
// sentinel to blank.
func normalizeOption(v string) string {
	v = strings.TrimSpace(v)
	if strings.ToUpper(v) == defaultTitle {
		return ""
	}
	return v
}

// makeVariantKey builds the consolidation key for one row. ok is false
// when the row carries neither an option value nor a SKU; such rows have
// no variant signal and are excluded from consolidation.
func makeVariantKey(t *Table, row int) (key variantKey, opt1, opt2 string, ok bool) {
	opt1 = normalizeOption(t.Cell(row, ColOption1Value))
	opt2 = normalizeOption(t.Cell(row, ColOption2Value))
	sku := strings.TrimSpace(t.Cell(row, ColVariantSKU))

	norm1 := strings.ToUpper(opt1)
	norm2 := strings.ToUpper(opt2)

	switch {
	case norm1 != "" || norm2 != "":
		return variantKey{kind: keyByOptions, option1: norm1, option2: norm2}, opt1, opt2, true
	case sku != "":
		return variantKey{kind: keyBySKU, sku: sku}, opt1, opt2, true
	default:
		return variantKey{}, "", "", false
	}
}

// consolidateVariants buckets the rows of a variant-bearing handle into
// distinct variant combinations, in first-appearance order. Rows without a
// variant signal are skipped; an empty result means the caller must fall
// back to simple-product emission.
func consolidateVariants(t *Table, rows []int) []*variantBucket {
	var order []*variantBucket
	seen := make(map[variantKey]*variantBucket)

	for _, row := range rows {
		key, opt1, opt2, ok := makeVariantKey(t, row)
		if !ok {
			continue
		}
		bucket := seen[key]
		if bucket == nil {
			bucket = &variantBucket{option1: opt1, option2: opt2}
			seen[key] = bucket
			order = append(order, bucket)
		}
		bucket.fields.absorb(t, row)
	}

	return order
}
