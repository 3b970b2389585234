package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/uptrace/bun"
)

type CreateTransactionParams struct {
	VendorID          int64
	OrderNumber       string
	TransactionNumber string
	Amount            float64
	PaymentMethod     string
	ReferenceNumber   string
	ChequeNo          string
	CashAccountID     int64
	// When the purchase should be posted right away, the expense
	// account to debit and the order line the pair belongs to.
	ExpenseAccountID int64
	OrderLineID      int64
}

// CreateVendorTransaction opens a transaction together with its ledger
// booking. The optional purchase pair (debit expense, credit payable)
// is tagged with the order line so that payment recomputation skips it.
func (svc *IdilService) CreateVendorTransaction(ctx context.Context, params CreateTransactionParams) (*models.VendorTransaction, error) {
	vendor, err := svc.FindVendor(ctx, params.VendorID)
	if err != nil {
		return nil, err
	}

	booking := &models.TransactionBooking{
		TrnNumber:       params.TransactionNumber,
		Amount:          params.Amount,
		RemainingAmount: params.Amount,
		PaymentStatus:   common.PaymentStatusPending,
	}
	transaction := &models.VendorTransaction{
		OrderNumber:       params.OrderNumber,
		TransactionNumber: params.TransactionNumber,
		TransactionDate:   time.Now(),
		VendorID:          vendor.ID,
		Amount:            params.Amount,
		RemainingAmount:   params.Amount,
		ChequeNo:          params.ChequeNo,
		PaymentMethod:     params.PaymentMethod,
		PaymentStatus:     common.PaymentStatusPending,
		ReferenceNumber:   params.ReferenceNumber,
		CashAccountID:     params.CashAccountID,
	}

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(booking).Exec(ctx); err != nil {
			return err
		}
		transaction.BookingID = booking.ID
		if _, err := tx.NewInsert().Model(transaction).Exec(ctx); err != nil {
			return err
		}
		if params.ExpenseAccountID == 0 {
			return nil
		}
		now := time.Now()
		lines := []*models.TransactionBookingLine{
			{
				TransactionBookingID: booking.ID,
				AccountID:            params.ExpenseAccountID,
				TransactionType:      common.TransactionTypeDebit,
				DrAmount:             params.Amount,
				TransactionDate:      now,
				OrderLineID:          params.OrderLineID,
			},
			{
				TransactionBookingID: booking.ID,
				AccountID:            vendor.AccountPayableID,
				TransactionType:      common.TransactionTypeCredit,
				CrAmount:             params.Amount,
				TransactionDate:      now,
				OrderLineID:          params.OrderLineID,
			},
		}
		for _, line := range lines {
			if _, err := tx.NewInsert().Model(line).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	return transaction, err
}

func (svc *IdilService) FindVendorTransaction(ctx context.Context, transactionID int64) (*models.VendorTransaction, error) {
	var transaction models.VendorTransaction

	err := svc.DB.NewSelect().
		Model(&transaction).
		Relation("Vendor").
		Relation("Booking").
		Relation("Payments").
		Where("vendor_transaction.id = ?", transactionID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return &transaction, err
	}
	return &transaction, nil
}

func (svc *IdilService) VendorTransactions(ctx context.Context, vendorID int64) ([]models.VendorTransaction, error) {
	transactions := []models.VendorTransaction{}

	query := svc.DB.NewSelect().Model(&transactions)
	if vendorID != 0 {
		query.Where("vendor_id = ?", vendorID)
	}
	query.OrderExpr("id DESC").Limit(100)
	err := query.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (svc *IdilService) PaymentsFor(ctx context.Context, transactionID int64) ([]models.VendorPayment, error) {
	payments := []models.VendorPayment{}
	err := svc.DB.NewSelect().Model(&payments).Where("vendor_transaction_id = ?", transactionID).OrderExpr("id ASC").Scan(ctx)
	return payments, err
}
