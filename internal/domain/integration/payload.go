package integration

import (
	"github.com/storeadmin/backend/internal/domain/catalog"
)

// NewProductPayload maps a local product to the outgoing payload shape.
// All products are pushed as simple products and the price is rendered
// as a fixed-point string. Images with unrecognized extensions are
// omitted rather than sent as invalid values; imported products can
// carry such URLs.
func NewProductPayload(product *catalog.Product) ProductPayload {
	images := make([]ProductImage, 0, len(product.Images))
	for _, src := range product.Images {
		if !catalog.IsAllowedImageURL(src) {
			continue
		}
		images = append(images, ProductImage{Src: src})
	}
	return ProductPayload{
		Name:         product.Name,
		Type:         "simple",
		RegularPrice: product.Price.String(),
		Description:  product.Description,
		Images:       images,
	}
}
