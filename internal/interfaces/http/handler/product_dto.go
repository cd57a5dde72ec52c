package handler

// ProductRequest represents a create or update product request.
// The price travels as a string to avoid float rounding. A nil
// SyncToWooCommerce means the default: push on create when a store is
// connected.
type ProductRequest struct {
	Name              string   `json:"name" binding:"required"`
	Description       string   `json:"description"`
	Price             string   `json:"price" binding:"required"`
	Images            []string `json:"images"`
	SyncToWooCommerce *bool    `json:"syncToWooCommerce"`
}

// CheckProductRequest searches the remote store by name and/or SKU.
// Both filters are optional; a SKU narrows a name search rather than
// replacing it.
type CheckProductRequest struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// ImportProductRequest identifies a remote product to mirror locally
type ImportProductRequest struct {
	WCProductID int64 `json:"wc_product_id" binding:"required"`
}
