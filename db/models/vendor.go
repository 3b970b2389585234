package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Vendor : Vendor Registration Model
type Vendor struct {
	bun.BaseModel `bun:"vendor"`

	ID               int64         `json:"id" bun:",pk,autoincrement"`
	Name             string        `json:"name" bun:",notnull"`
	Phone            string        `json:"phone" bun:",nullzero"`
	Email            string        `json:"email" bun:",nullzero"`
	AccountPayableID int64         `json:"account_payable_id" bun:",notnull"`
	AccountPayable   *ChartAccount `json:"-" bun:"rel:belongs-to,join:account_payable_id=id"`
	CreatedAt        time.Time     `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
