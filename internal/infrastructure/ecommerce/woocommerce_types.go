package ecommerce

import (
	"strings"

	"github.com/storeadmin/backend/internal/domain/integration"
)

// wcImageUploadErrorCode is the error code WooCommerce returns when it
// cannot fetch or process a product image
const wcImageUploadErrorCode = "woocommerce_product_image_upload_error"

// WCProduct is the wire representation of a WooCommerce product
type WCProduct struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku,omitempty"`
	Type         string    `json:"type,omitempty"`
	Status       string    `json:"status,omitempty"`
	Description  string    `json:"description,omitempty"`
	RegularPrice string    `json:"regular_price,omitempty"`
	Price        string    `json:"price,omitempty"`
	Permalink    string    `json:"permalink,omitempty"`
	Images       []WCImage `json:"images"`
}

// WCImage is the wire representation of a WooCommerce product image
type WCImage struct {
	ID  int64  `json:"id,omitempty"`
	Src string `json:"src"`
}

// WCError is the error envelope WooCommerce returns on failed requests
type WCError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IsImageUploadError reports whether the error is an image ingestion failure
func (e *WCError) IsImageUploadError() bool {
	return e.Code == wcImageUploadErrorCode || strings.Contains(e.Message, wcImageUploadErrorCode)
}

// WCSystemStatus is the subset of the system status report used to verify
// a connection
type WCSystemStatus struct {
	Environment struct {
		HomeURL string `json:"home_url"`
		SiteURL string `json:"site_url"`
		Version string `json:"version"`
	} `json:"environment"`
}

// toRemoteProduct converts a WCProduct to the platform-neutral representation
func toRemoteProduct(p *WCProduct) integration.RemoteProduct {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.Src)
	}

	price := p.Price
	if price == "" {
		price = p.RegularPrice
	}

	return integration.RemoteProduct{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       price,
		Status:      p.Status,
		Permalink:   p.Permalink,
		Images:      images,
	}
}

// fromPayload converts an outgoing payload to the wire representation
func fromPayload(payload integration.ProductPayload) WCProduct {
	images := make([]WCImage, 0, len(payload.Images))
	for _, img := range payload.Images {
		images = append(images, WCImage{Src: img.Src})
	}

	return WCProduct{
		Name:         payload.Name,
		Type:         payload.Type,
		RegularPrice: payload.RegularPrice,
		Description:  payload.Description,
		Images:       images,
	}
}
