package model

type User struct {
	BaseModel
	Name    string `db:"name" json:"name"`
	PinHash string `db:"pin_hash" json:"-"`
	IsAdmin bool   `db:"is_admin" json:"is_admin"`
}
