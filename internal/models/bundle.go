package models

// BundleOffer groups same-category products at a discount. Products are
// snapshots; OriginalPrice does not follow later price edits.
type BundleOffer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Products      []Product `json:"products"`
	BundlePrice   float64   `json:"bundlePrice"`
	OriginalPrice float64   `json:"originalPrice"`
	Discount      float64   `json:"discount"`
	Color         string    `json:"color"`
	IsActive      bool      `json:"isActive"`
}

// Savings is the customer saving of the bundle against its snapshot price.
func (b BundleOffer) Savings() float64 {
	return b.OriginalPrice - b.BundlePrice
}

// Clone deep-copies the bundle and its product snapshots.
func (b BundleOffer) Clone() BundleOffer {
	c := b
	c.Products = CloneProducts(b.Products)
	return c
}

func CloneBundles(bundles []BundleOffer) []BundleOffer {
	out := make([]BundleOffer, len(bundles))
	for i, b := range bundles {
		out[i] = b.Clone()
	}
	return out
}

// BundleConfig is the per-category template used for generated bundles.
type BundleConfig struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Discount float64  `json:"discount"`
	Keywords []string `json:"keywords"`
}

type BundleUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Discount *float64 `json:"discount,omitempty"`
	Color    *string  `json:"color,omitempty"`
	IsActive *bool    `json:"isActive,omitempty"`
}

// BundleCreate builds a bundle by hand from existing products. Discount and
// color fall back to the category template when omitted.
type BundleCreate struct {
	Name       string   `json:"name"`
	ProductIDs []string `json:"productIds"`
	Discount   *float64 `json:"discount,omitempty"`
	Color      *string  `json:"color,omitempty"`
}
