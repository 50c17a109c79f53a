package dto

type CartLine struct {
	Barcode string  `json:"barcode"`
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
	Cost    float64 `json:"cost"`
}

type RecordSaleInput struct {
	Lines       []CartLine `json:"lines"`
	PaymentType string     `json:"payment_type"`
}
