package models

import (
	"time"

	"github.com/uptrace/bun"
)

// VendorPayment : Vendor Payment Model
//
// One row per payment event against a vendor transaction. Non-empty
// cheque numbers are unique system-wide (partial index, see migrations).
type VendorPayment struct {
	bun.BaseModel `bun:"vendor_payment"`

	ID                  int64              `json:"id" bun:",pk,autoincrement"`
	VendorID            int64              `json:"vendor_id" bun:",notnull"`
	Vendor              *Vendor            `json:"-" bun:"rel:belongs-to,join:vendor_id=id"`
	VendorTransactionID int64              `json:"vendor_transaction_id" bun:",notnull"`
	VendorTransaction   *VendorTransaction `json:"-" bun:"rel:belongs-to,join:vendor_transaction_id=id"`
	AmountPaid          float64            `json:"amount_paid" bun:",notnull"`
	ChequeNo            string             `json:"cheque_no" bun:",nullzero"`
	PaymentDate         time.Time          `json:"payment_date" bun:",nullzero,notnull,default:current_timestamp"`
}
