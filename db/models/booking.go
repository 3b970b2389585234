package models

import (
	"time"

	"github.com/uptrace/bun"
)

// TransactionBooking : Ledger Booking Header Model
type TransactionBooking struct {
	bun.BaseModel `bun:"transaction_booking"`

	ID              int64                     `json:"id" bun:",pk,autoincrement"`
	TrnNumber       string                    `json:"trn_number" bun:",nullzero"`
	Amount          float64                   `json:"amount" bun:",notnull"`
	AmountPaid      float64                   `json:"amount_paid"`
	RemainingAmount float64                   `json:"remaining_amount"`
	PaymentStatus   string                    `json:"payment_status" bun:",default:'pending'"`
	BookingLines    []*TransactionBookingLine `json:"booking_lines,omitempty" bun:"rel:has-many,join:id=transaction_booking_id"`
	CreatedAt       time.Time                 `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}

// TransactionBookingLine : Ledger Booking Line Model
//
// One debit or credit posting against a chart account. Payment lines
// carry a vendor payment reference and no order line; purchase lines
// carry the order line they belong to.
type TransactionBookingLine struct {
	bun.BaseModel `bun:"transaction_booking_line"`

	ID                   int64               `json:"id" bun:",pk,autoincrement"`
	TransactionBookingID int64               `json:"transaction_booking_id" bun:",notnull"`
	TransactionBooking   *TransactionBooking `json:"-" bun:"rel:belongs-to,join:transaction_booking_id=id"`
	AccountID            int64               `json:"account_id" bun:",notnull"`
	Account              *ChartAccount       `json:"-" bun:"rel:belongs-to,join:account_id=id"`
	TransactionType      string              `json:"transaction_type" bun:",notnull"`
	DrAmount             float64             `json:"dr_amount"`
	CrAmount             float64             `json:"cr_amount"`
	TransactionDate      time.Time           `json:"transaction_date" bun:",nullzero,notnull,default:current_timestamp"`
	VendorPaymentID      int64               `json:"vendor_payment_id" bun:",nullzero"`
	VendorPayment        *VendorPayment      `json:"-" bun:"rel:belongs-to,join:vendor_payment_id=id"`
	OrderLineID          int64               `json:"order_line_id" bun:",nullzero"`
}
