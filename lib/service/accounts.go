package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

func (svc *IdilService) FindAccount(ctx context.Context, accountID int64) (*models.ChartAccount, error) {
	var account models.ChartAccount

	err := svc.DB.NewSelect().Model(&account).Where("id = ?", accountID).Limit(1).Scan(ctx)
	if err != nil {
		return &account, err
	}
	return &account, nil
}

// AccountBalance is the sum of all debit postings against the account
// minus the sum of all credit postings.
func (svc *IdilService) AccountBalance(ctx context.Context, accountID int64) (float64, error) {
	return svc.accountBalance(ctx, svc.DB, accountID)
}

func (svc *IdilService) accountBalance(ctx context.Context, db bun.IDB, accountID int64) (float64, error) {
	var totalDebit, totalCredit float64

	err := db.NewSelect().
		Model((*models.TransactionBookingLine)(nil)).
		// float literal so an empty sum scans as float on sqlite too
		ColumnExpr("coalesce(sum(dr_amount), 0.0)").
		Where("account_id = ? AND transaction_type = ?", accountID, common.TransactionTypeDebit).
		Scan(ctx, &totalDebit)
	if err != nil {
		return 0, err
	}
	err = db.NewSelect().
		Model((*models.TransactionBookingLine)(nil)).
		ColumnExpr("coalesce(sum(cr_amount), 0.0)").
		Where("account_id = ? AND transaction_type = ?", accountID, common.TransactionTypeCredit).
		Scan(ctx, &totalCredit)
	if err != nil {
		return 0, err
	}
	return totalDebit - totalCredit, nil
}

// lockAccount takes a row lock on the account so that concurrent
// payments cannot both pass the balance check before either posts.
// SQLite serializes writers on its own.
func (svc *IdilService) lockAccount(ctx context.Context, tx bun.Tx, accountID int64) (*models.ChartAccount, error) {
	var account models.ChartAccount

	query := tx.NewSelect().Model(&account).Where("chart_account.id = ?", accountID).Limit(1)
	if svc.DB.Dialect().Name() == dialect.PG {
		query = query.For("UPDATE")
	}
	err := query.Scan(ctx)
	if err != nil {
		return &account, err
	}
	return &account, nil
}

// RecordOpeningBalance funds an account by posting a booking with a
// debit on the account and a matching credit on the equity account.
func (svc *IdilService) RecordOpeningBalance(ctx context.Context, accountID int64, equityAccountID int64, amount float64) (booking *models.TransactionBooking, err error) {
	booking = &models.TransactionBooking{
		TrnNumber:     "OPENING",
		Amount:        amount,
		PaymentStatus: common.PaymentStatusPaid,
	}
	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(booking).Exec(ctx); err != nil {
			return err
		}
		now := time.Now()
		lines := []*models.TransactionBookingLine{
			{
				TransactionBookingID: booking.ID,
				AccountID:            accountID,
				TransactionType:      common.TransactionTypeDebit,
				DrAmount:             amount,
				TransactionDate:      now,
			},
			{
				TransactionBookingID: booking.ID,
				AccountID:            equityAccountID,
				TransactionType:      common.TransactionTypeCredit,
				CrAmount:             amount,
				TransactionDate:      now,
			},
		}
		for _, line := range lines {
			if _, err := tx.NewInsert().Model(line).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	return booking, err
}
