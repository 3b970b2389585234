package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/db"
	"github.com/nagaad/idil-erp/db/migrations"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/nagaad/idil-erp/lib/logging"
	"github.com/nagaad/idil-erp/lib/service"
	"github.com/uptrace/bun/migrate"
)

// idilTestServiceInit spins up a service on a fresh in-memory database
// and runs all migrations against it.
func idilTestServiceInit(t *testing.T) (svc *service.IdilService, err error) {
	// a named shared-cache database per test keeps tests isolated
	dbUri := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	c := &service.Config{
		DatabaseUri: dbUri,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(ctx)
	if err != nil {
		return nil, err
	}
	_, err = migrator.Migrate(ctx)
	if err != nil {
		return nil, err
	}

	svc = &service.IdilService{
		Config: c,
		DB:     dbConn,
		Logger: logging.Logger(""),
	}
	return svc, nil
}

type ledgerFixture struct {
	CashAccount    *models.ChartAccount
	PayableAccount *models.ChartAccount
	EquityAccount  *models.ChartAccount
	ExpenseAccount *models.ChartAccount
	Vendor         *models.Vendor
}

// seedLedger creates the chart accounts and a vendor the payment tests
// post against.
func seedLedger(ctx context.Context, svc *service.IdilService) (*ledgerFixture, error) {
	fixture := &ledgerFixture{
		CashAccount:    &models.ChartAccount{Code: "1001", Name: "Main Cash", AccountType: common.AccountTypeCash},
		PayableAccount: &models.ChartAccount{Code: "2001", Name: "Accounts Payable", AccountType: common.AccountTypePayable},
		EquityAccount:  &models.ChartAccount{Code: "3001", Name: "Owner Equity", AccountType: common.AccountTypeEquity},
		ExpenseAccount: &models.ChartAccount{Code: "5001", Name: "Purchases", AccountType: common.AccountTypeExpense},
	}
	for _, account := range []*models.ChartAccount{
		fixture.CashAccount, fixture.PayableAccount, fixture.EquityAccount, fixture.ExpenseAccount,
	} {
		if _, err := svc.DB.NewInsert().Model(account).Exec(ctx); err != nil {
			return nil, err
		}
	}

	vendor, err := svc.CreateVendor(ctx, "Hodan Traders", "061223344", "hodan@example.com", fixture.PayableAccount.ID)
	if err != nil {
		return nil, err
	}
	fixture.Vendor = vendor
	return fixture, nil
}
