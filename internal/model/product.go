package model

type Product struct {
	BaseModel
	Barcode string  `db:"barcode" json:"barcode"`
	Name    string  `db:"name" json:"name"`
	Price   float64 `db:"price" json:"price"`
	Cost    float64 `db:"cost" json:"cost"`
	Qty     int     `db:"qty" json:"qty"`
	IsNew   bool    `db:"is_new" json:"is_new"`
}
