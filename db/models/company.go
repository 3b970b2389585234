package models

import (
	"github.com/uptrace/bun"
)

// Company : Company Model
type Company struct {
	bun.BaseModel `bun:"company"`

	ID         int64     `json:"id" bun:",pk,autoincrement"`
	Name       string    `json:"name" bun:",notnull"`
	CurrencyID int64     `json:"currency_id" bun:",nullzero"`
	Currency   *Currency `json:"-" bun:"rel:belongs-to,join:currency_id=id"`
}

// Currency : Currency Model
type Currency struct {
	bun.BaseModel `bun:"currency"`

	ID     int64  `json:"id" bun:",pk,autoincrement"`
	Code   string `json:"code" bun:",notnull,unique"`
	Name   string `json:"name" bun:",notnull"`
	Symbol string `json:"symbol" bun:",nullzero"`
}
