package converter

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrHandleColumnMissing is returned when the input has no Handle column
// and therefore cannot be a Shopify product export.
var ErrHandleColumnMissing = errors.New(`Handle column not found, please upload a valid Shopify export file`)

// handleGroup is the ordered set of row indices sharing one resolved
// handle — conceptually one logical product.
type handleGroup struct {
	handle string
	rows   []int
}

// commonInfo holds the attributes shared by every output row of a handle,
// each resolved as the first non-blank value in row order.
type commonInfo struct {
	title          string
	body           string
	category       string
	tags           string
	vendor         string
	seoTitle       string
	seoDescription string
	googleCategory string
	productType    string
	createdAt      string
	images         string
	visible        bool
}

// Convert transforms a Shopify export table into the 37-column ikas import
// schema: rows are grouped by handle, each handle is classified as simple
// or variant-bearing, variant rows are consolidated into distinct
// combinations, and exactly one output row is emitted per simple product
// or per combination. The input table is not modified.
func Convert(src *Table) (*Table, error) {
	if !src.HasColumn(ColHandle) {
		return nil, ErrHandleColumnMissing
	}

	groups := groupByHandle(src)
	out := NewTable(append([]string(nil), IkasColumns...))

	for _, g := range groups {
		info := aggregateCommon(src, g)
		emitProduct(out, src, g, info)
	}

	return out, nil
}

// groupByHandle buckets row indices by handle, in first-appearance order.
// Blank handles inherit the nearest preceding non-blank handle
// (forward-fill); rows before the first non-blank handle belong to no
// group and are dropped.
func groupByHandle(t *Table) []*handleGroup {
	var order []*handleGroup
	byHandle := make(map[string]*handleGroup)

	current := ""
	for i := 0; i < t.RowCount(); i++ {
		handle := t.Cell(i, ColHandle)
		if isBlank(handle) {
			handle = current
		} else {
			current = handle
		}
		if handle == "" {
			continue
		}

		g := byHandle[handle]
		if g == nil {
			g = &handleGroup{handle: handle}
			byHandle[handle] = g
			order = append(order, g)
		}
		g.rows = append(g.rows, i)
	}

	return order
}

// aggregateCommon resolves the shared attributes, image set and visibility
// flag for one handle group. Optional columns that are absent from the
// input read as entirely blank.
func aggregateCommon(t *Table, g *handleGroup) commonInfo {
	info := commonInfo{
		title:          firstNonBlank(t, g.rows, ColTitle),
		body:           firstNonBlank(t, g.rows, ColBodyHTML),
		tags:           firstNonBlank(t, g.rows, ColTags),
		vendor:         firstNonBlank(t, g.rows, ColVendor),
		seoTitle:       firstNonBlank(t, g.rows, ColSEOTitle),
		seoDescription: firstNonBlank(t, g.rows, ColSEODescription),
		productType:    firstNonBlank(t, g.rows, ColType),
		createdAt:      firstNonBlank(t, g.rows, ColCreatedAt),
	}

	// Product Category only wins when it has at least one value anywhere
	// in the group; otherwise Type stands in, even if blank too.
	if anyNonBlank(t, g.rows, ColProductCategory) {
		info.category = firstNonBlank(t, g.rows, ColProductCategory)
	} else {
		info.category = firstNonBlank(t, g.rows, ColType)
	}

	info.googleCategory = firstNonBlank(t, g.rows, ColGoogleCategory)
	if info.googleCategory == "" {
		info.googleCategory = firstNonBlank(t, g.rows, ColGoogleCategoryLegacy)
	}

	info.images = collectImages(t, g.rows)
	info.visible = resolveVisibility(t, g.rows)

	return info
}

// collectImages unions the primary and per-variant image URLs of a group,
// deduplicated, sorted and joined with ";".
func collectImages(t *Table, rows []int) string {
	set := make(map[string]struct{})
	for _, col := range []string{ColImageSrc, ColVariantImage} {
		if !t.HasColumn(col) {
			continue
		}
		for _, r := range rows {
			if v := t.Cell(r, col); !isBlank(v) {
				set[v] = struct{}{}
			}
		}
	}
	if len(set) == 0 {
		return ""
	}

	urls := make([]string, 0, len(set))
	for u := range set {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return strings.Join(urls, ";")
}

// resolveVisibility maps the group's status to the sales-channel flag:
// Status "Active" (any case) is visible; with no Status value, Published
// TRUE/1/YES counts as active.
func resolveVisibility(t *Table, rows []int) bool {
	if status := firstNonBlank(t, rows, ColStatus); status != "" {
		return strings.ToUpper(strings.TrimSpace(status)) == "ACTIVE"
	}
	switch strings.ToUpper(strings.TrimSpace(firstNonBlank(t, rows, ColPublished))) {
	case "TRUE", "1", "YES":
		return true
	}
	return false
}

// isSimpleProduct reports whether the handle's first row carries the
// "Default Title" sentinel as its primary option value.
func isSimpleProduct(t *Table, g *handleGroup) bool {
	v := t.Cell(g.rows[0], ColOption1Value)
	return strings.ToUpper(strings.TrimSpace(v)) == defaultTitle
}

// emitProduct appends the output rows for one handle group. A handle
// classified as variant-bearing can still end up simple when none of its
// rows carries a variant signal; classification is therefore final only
// after consolidation.
func emitProduct(out, src *Table, g *handleGroup, info commonInfo) {
	if isSimpleProduct(src, g) {
		emitSimple(out, src, g, info)
		return
	}

	buckets := consolidateVariants(src, g.rows)
	if len(buckets) == 0 {
		// retroactive reclassification: no bucket means no real variants
		emitSimple(out, src, g, info)
		return
	}

	// axis names come from the first row and repeat on every bucket row
	axis1Name := strings.TrimSpace(src.Cell(g.rows[0], ColOption1Name))
	axis2Name := strings.TrimSpace(src.Cell(g.rows[0], ColOption2Name))

	for _, b := range buckets {
		out.AppendRow(buildIkasRow(g.handle, g.handle, info, b.fields,
			axis1Name, normalizeOption(b.option1),
			axis2Name, normalizeOption(b.option2)))
	}
}

// emitSimple merges the whole group into one output row with blank group
// id and blank variant axes.
func emitSimple(out, src *Table, g *handleGroup, info commonInfo) {
	fields := mergeGroupFields(src, g.rows)
	out.AppendRow(buildIkasRow("", g.handle, info, fields, "", "", "", ""))
}

// buildIkasRow assembles one output row in the fixed ikas column order.
// The placeholder columns (purchase price, deletion flag, weight, HS code,
// unit quantities, restock flag, cart limits, variant activity) have no
// source in the Shopify schema and stay blank on every row.
func buildIkasRow(groupID, slug string, info commonInfo, f variantFields,
	axis1Name, axis1Value, axis2Name, axis2Value string) []string {

	salesChannel := ""
	if info.visible {
		salesChannel = "VISIBLE"
	}

	return []string{
		groupID,                      // Ürün Grup ID
		"",                           // Varyant ID
		info.title,                   // İsim
		info.body,                    // Açıklama
		formatPrice(f.salePrice),     // Satış Fiyatı
		formatPrice(f.discountPrice), // İndirimli Fiyatı
		"",                           // Alış Fiyatı
		f.barcode,                    // Barkod Listesi
		f.sku,                        // SKU
		"",                           // Silindi mi?
		info.vendor,                  // Marka
		info.category,                // Kategoriler
		info.tags,                    // Etiketler
		info.images,                  // Resim URL
		info.seoTitle,                // Metadata Başlık
		info.seoDescription,          // Metadata Açıklama
		slug,                         // Slug
		strconv.Itoa(f.stock),        // Stok:Ana Depo
		info.productType,             // Tip
		axis1Name,                    // Varyant Tip 1
		axis1Value,                   // Varyant Değer 1
		axis2Name,                    // Varyant Tip 2
		axis2Value,                   // Varyant Değer 2
		"",                           // Desi
		"",                           // HS Kod
		"",                           // Birim Ürün Miktarı
		"",                           // Ürün Birimi
		"",                           // Satılan Ürün Miktarı
		"",                           // Satılan Ürün Birimi
		info.googleCategory,          // Google Ürün Kategorisi
		info.vendor,                  // Tedarikçi
		"",                           // Stoğu Tükenince Satmaya Devam Et
		salesChannel,                 // Satış Kanalı:belix
		"",                           // Sepet Başına Minimum Alma Adeti:belix
		"",                           // Sepet Başına Maksimum Alma Adeti:belix
		"",                           // Varyant Aktiflik
		info.createdAt,               // Oluşturulma Tarihi
	}
}
