package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ChartAccount : Chart of Accounts Model
type ChartAccount struct {
	bun.BaseModel `bun:"chart_account"`

	ID          int64     `json:"id" bun:",pk,autoincrement"`
	Code        string    `json:"code" bun:",notnull,unique"`
	Name        string    `json:"name" bun:",notnull"`
	AccountType string    `json:"account_type" bun:",notnull"`
	CurrencyID  int64     `json:"currency_id" bun:",nullzero"`
	Currency    *Currency `json:"-" bun:"rel:belongs-to,join:currency_id=id"`
	CreatedAt   time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
