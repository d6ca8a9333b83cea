package converter

// Shopify export column names the converter reads. Column matching is
// case-exact; only Handle is mandatory.
const (
	ColHandle                = "Handle"
	ColTitle                 = "Title"
	ColBodyHTML              = "Body (HTML)"
	ColVendor                = "Vendor"
	ColType                  = "Type"
	ColProductCategory       = "Product Category"
	ColTags                  = "Tags"
	ColPublished             = "Published"
	ColStatus                = "Status"
	ColOption1Name           = "Option1 Name"
	ColOption1Value          = "Option1 Value"
	ColOption2Name           = "Option2 Name"
	ColOption2Value          = "Option2 Value"
	ColVariantSKU            = "Variant SKU"
	ColVariantBarcode        = "Variant Barcode"
	ColBarcode               = "Barcode"
	ColVariantInventoryQty   = "Variant Inventory Qty"
	ColVariantPrice          = "Variant Price"
	ColCompareAtPrice        = "Compare At Price"
	ColVariantCompareAtPrice = "Variant Compare At Price"
	ColImageSrc              = "Image Src"
	ColVariantImage          = "Variant Image"
	ColSEOTitle              = "SEO Title"
	ColSEODescription        = "SEO Description"
	ColCreatedAt             = "Created At"
	ColGoogleCategory        = "Google Shopping / Google Product Category"
	ColGoogleCategoryLegacy  = "Google Product Category"
)

// ShopifyColumns is the full set of columns a Shopify product export may
// carry. Columns not listed here (and listed ones the converter has no
// mapping for, such as the third option axis) are dropped from the output.
var ShopifyColumns = []string{
	"Handle",
	"Title",
	"Body (HTML)",
	"Vendor",
	"Type",
	"Product Category",
	"Tags",
	"Published",
	"Status",
	"Option1 Name",
	"Option1 Value",
	"Option2 Name",
	"Option2 Value",
	"Option3 Name",
	"Option3 Value",
	"Variant SKU",
	"Variant Barcode",
	"Barcode",
	"Variant Grams",
	"Variant Inventory Tracker",
	"Variant Inventory Qty",
	"Variant Price",
	"Compare At Price",
	"Variant Compare At Price",
	"Image Src",
	"Image Position",
	"Image Alt Text",
	"Variant Image",
	"SEO Title",
	"SEO Description",
	"Created At",
	"Google Shopping / Google Product Category",
}

// IkasColumns is the exact 37-column ikas import schema in output order.
// Order and spelling are a compatibility contract with the ikas importer
// and must not change.
var IkasColumns = []string{
	"Ürün Grup ID",
	"Varyant ID",
	"İsim",
	"Açıklama",
	"Satış Fiyatı",
	"İndirimli Fiyatı",
	"Alış Fiyatı",
	"Barkod Listesi",
	"SKU",
	"Silindi mi?",
	"Marka",
	"Kategoriler",
	"Etiketler",
	"Resim URL",
	"Metadata Başlık",
	"Metadata Açıklama",
	"Slug",
	"Stok:Ana Depo",
	"Tip",
	"Varyant Tip 1",
	"Varyant Değer 1",
	"Varyant Tip 2",
	"Varyant Değer 2",
	"Desi",
	"HS Kod",
	"Birim Ürün Miktarı",
	"Ürün Birimi",
	"Satılan Ürün Miktarı",
	"Satılan Ürün Birimi",
	"Google Ürün Kategorisi",
	"Tedarikçi",
	"Stoğu Tükenince Satmaya Devam Et",
	"Satış Kanalı:belix",
	"Sepet Başına Minimum Alma Adeti:belix",
	"Sepet Başına Maksimum Alma Adeti:belix",
	"Varyant Aktiflik",
	"Oluşturulma Tarihi",
}
