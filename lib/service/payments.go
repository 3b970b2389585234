package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/uptrace/bun"
)

type RecordPaymentParams struct {
	TransactionID int64
	Amount        float64
	// Optional. Falls back to the cash account stored on the transaction.
	CashAccountID int64
	// Optional. Falls back to the cheque number stored on the transaction.
	ChequeNo string
}

type RecordPaymentResult struct {
	Payment     *models.VendorPayment
	Transaction *models.VendorTransaction
	Booking     *models.TransactionBooking
}

// RecordPayment pays part or all of a vendor transaction out of a cash
// account. The balance check, the payment record and the ledger posting
// run in one database transaction with the cash account row locked, so
// two concurrent payments cannot both pass the check and overdraw the
// account.
//
// Side effects on success: a vendor payment row, a debit line on the
// vendor's payable account, a credit line on the cash account, and
// recomputed paid/remaining amounts and payment status on both the
// transaction and its booking.
func (svc *IdilService) RecordPayment(ctx context.Context, params RecordPaymentParams) (*RecordPaymentResult, error) {
	result := &RecordPaymentResult{}

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		transaction := &models.VendorTransaction{}
		err := tx.NewSelect().
			Model(transaction).
			Relation("Vendor").
			Where("vendor_transaction.id = ?", params.TransactionID).
			Limit(1).
			Scan(ctx)
		if err != nil {
			return err
		}

		cashAccountID := params.CashAccountID
		if cashAccountID == 0 {
			cashAccountID = transaction.CashAccountID
		}
		if cashAccountID == 0 {
			return ErrCashAccountRequired
		}
		if transaction.BookingID == 0 {
			return ErrBookingRequired
		}

		cashAccount, err := svc.lockAccount(ctx, tx, cashAccountID)
		if err != nil {
			return err
		}
		availableBalance, err := svc.accountBalance(ctx, tx, cashAccount.ID)
		if err != nil {
			return err
		}
		if availableBalance < params.Amount {
			return ErrInsufficientBalance
		}

		chequeNo := params.ChequeNo
		if chequeNo == "" {
			chequeNo = transaction.ChequeNo
		}
		if chequeNo != "" {
			exists, err := tx.NewSelect().
				Model((*models.VendorPayment)(nil)).
				Where("cheque_no = ?", chequeNo).
				Exists(ctx)
			if err != nil {
				return err
			}
			if exists {
				return ErrChequeNumberUsed
			}
		}

		now := time.Now()
		payment := &models.VendorPayment{
			VendorID:            transaction.VendorID,
			VendorTransactionID: transaction.ID,
			AmountPaid:          params.Amount,
			ChequeNo:            chequeNo,
			PaymentDate:         now,
		}
		if _, err = tx.NewInsert().Model(payment).Exec(ctx); err != nil {
			return err
		}

		booking := &models.TransactionBooking{}
		err = tx.NewSelect().Model(booking).Where("id = ?", transaction.BookingID).Limit(1).Scan(ctx)
		if err != nil {
			return err
		}
		updatedPaidAmount := booking.AmountPaid + params.Amount
		booking.AmountPaid = updatedPaidAmount
		booking.RemainingAmount = booking.Amount - updatedPaidAmount

		// Debit the vendor's payable account, credit the cash account.
		// Payment lines carry no order line reference.
		lines := []*models.TransactionBookingLine{
			{
				TransactionBookingID: booking.ID,
				AccountID:            transaction.Vendor.AccountPayableID,
				TransactionType:      common.TransactionTypeDebit,
				DrAmount:             params.Amount,
				TransactionDate:      now,
				VendorPaymentID:      payment.ID,
			},
			{
				TransactionBookingID: booking.ID,
				AccountID:            cashAccount.ID,
				TransactionType:      common.TransactionTypeCredit,
				CrAmount:             params.Amount,
				TransactionDate:      now,
				VendorPaymentID:      payment.ID,
			},
		}
		for _, line := range lines {
			if _, err = tx.NewInsert().Model(line).Exec(ctx); err != nil {
				return err
			}
		}

		// Recompute the paid amount from the debit lines that belong to
		// no order line. This overrides the running total and guards
		// against double counting when several payment paths touch the
		// same booking.
		var existingPayments float64
		err = tx.NewSelect().
			Model((*models.TransactionBookingLine)(nil)).
			ColumnExpr("coalesce(sum(dr_amount), 0.0)").
			Where("transaction_booking_id = ? AND transaction_type = ? AND order_line_id IS NULL",
				booking.ID, common.TransactionTypeDebit).
			Scan(ctx, &existingPayments)
		if err != nil {
			return err
		}
		transaction.PaidAmount = existingPayments
		transaction.RemainingAmount = transaction.Amount - existingPayments
		transaction.CashAccountID = cashAccount.ID
		transaction.ChequeNo = chequeNo

		// Status is derived from the booking's running totals, not from
		// the recomputed transaction figures above. Paid wins the
		// tie-break: remaining is checked before the zero-paid case.
		status := common.PaymentStatusPartialPaid
		switch {
		case booking.RemainingAmount == 0:
			status = common.PaymentStatusPaid
		case updatedPaidAmount == 0:
			status = common.PaymentStatusPending
		}
		booking.PaymentStatus = status
		transaction.PaymentStatus = status

		if _, err = tx.NewUpdate().Model(booking).WherePK().Exec(ctx); err != nil {
			return err
		}
		if _, err = tx.NewUpdate().Model(transaction).WherePK().Exec(ctx); err != nil {
			return err
		}

		result.Payment = payment
		result.Transaction = transaction
		result.Booking = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
