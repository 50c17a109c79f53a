package dto

// UpsertProductInput creates or updates a product keyed by barcode.
// Nil fields keep their current value on an existing product.
type UpsertProductInput struct {
	Barcode string
	Name    *string
	Price   *float64
	Cost    *float64
	Qty     *int
	IsNew   *bool
}
