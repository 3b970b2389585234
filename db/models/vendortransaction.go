package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// VendorTransaction : Vendor Transaction Model
//
// A commitment to pay a vendor. remaining_amount must equal
// amount - paid_amount after every successful write.
type VendorTransaction struct {
	bun.BaseModel `bun:"vendor_transaction"`

	ID                int64               `json:"id" bun:",pk,autoincrement"`
	OrderNumber       string              `json:"order_number" bun:",nullzero"`
	TransactionNumber string              `json:"transaction_number" bun:",nullzero"`
	TransactionDate   time.Time           `json:"transaction_date" bun:",nullzero,notnull,default:current_timestamp"`
	VendorID          int64               `json:"vendor_id" bun:",notnull"`
	Vendor            *Vendor             `json:"-" bun:"rel:belongs-to,join:vendor_id=id"`
	Amount            float64             `json:"amount" bun:",notnull"`
	PaidAmount        float64             `json:"paid_amount"`
	RemainingAmount   float64             `json:"remaining_amount"`
	ChequeNo          string              `json:"cheque_no" bun:",nullzero"`
	PaymentMethod     string              `json:"payment_method" bun:",nullzero"`
	PaymentStatus     string              `json:"payment_status" bun:",default:'pending'"`
	ReferenceNumber   string              `json:"reffno" bun:",nullzero"`
	CashAccountID     int64               `json:"cash_account_id" bun:",nullzero"`
	CashAccount       *ChartAccount       `json:"-" bun:"rel:belongs-to,join:cash_account_id=id"`
	BookingID         int64               `json:"booking_id" bun:",nullzero"`
	Booking           *TransactionBooking `json:"-" bun:"rel:belongs-to,join:booking_id=id"`
	Payments          []*VendorPayment    `json:"payments,omitempty" bun:"rel:has-many,join:id=vendor_transaction_id"`
	CreatedAt         time.Time           `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt         bun.NullTime        `json:"updated_at"`
}

func (t *VendorTransaction) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		t.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}
