package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/controllers"
	"github.com/nagaad/idil-erp/db"
	"github.com/nagaad/idil-erp/db/migrations"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/nagaad/idil-erp/lib"
	"github.com/nagaad/idil-erp/lib/logging"
	"github.com/nagaad/idil-erp/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

type paymentFixture struct {
	svc         *service.IdilService
	e           *echo.Echo
	cashAccount *models.ChartAccount
	transaction *models.VendorTransaction
}

func paymentControllerInit(t *testing.T) *paymentFixture {
	c := &service.Config{
		DatabaseUri: fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}
	dbConn, err := db.Open(c)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	svc := &service.IdilService{Config: c, DB: dbConn, Logger: logging.Logger("")}

	cash := &models.ChartAccount{Code: "1001", Name: "Main Cash", AccountType: common.AccountTypeCash}
	payable := &models.ChartAccount{Code: "2001", Name: "Accounts Payable", AccountType: common.AccountTypePayable}
	equity := &models.ChartAccount{Code: "3001", Name: "Owner Equity", AccountType: common.AccountTypeEquity}
	for _, account := range []*models.ChartAccount{cash, payable, equity} {
		_, err = svc.DB.NewInsert().Model(account).Exec(ctx)
		require.NoError(t, err)
	}
	vendor, err := svc.CreateVendor(ctx, "Hodan Traders", "", "", payable.ID)
	require.NoError(t, err)
	_, err = svc.RecordOpeningBalance(ctx, cash.ID, equity.ID, 5000)
	require.NoError(t, err)
	transaction, err := svc.CreateVendorTransaction(ctx, service.CreateTransactionParams{
		VendorID: vendor.ID,
		Amount:   1000,
	})
	require.NoError(t, err)

	e := echo.New()
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	return &paymentFixture{svc: svc, e: e, cashAccount: cash, transaction: transaction}
}

func (f *paymentFixture) recordPayment(t *testing.T, transactionID int64, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v2/transactions/:id/payments", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprintf("%d", transactionID))

	controller := controllers.NewRecordPaymentController(f.svc)
	require.NoError(t, controller.RecordPayment(c))
	return rec
}

func TestRecordPaymentEndpoint(t *testing.T) {
	f := paymentControllerInit(t)

	rec := f.recordPayment(t, f.transaction.ID, map[string]interface{}{
		"amount":          400.0,
		"cash_account_id": f.cashAccount.ID,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	response := &controllers.RecordPaymentResponseBody{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), response))
	assert.InDelta(t, 400, response.PaidAmount, 0.001)
	assert.InDelta(t, 600, response.RemainingAmount, 0.001)
	assert.Equal(t, common.PaymentStatusPartialPaid, response.PaymentStatus)
}

func TestRecordPaymentEndpointMissingCashAccount(t *testing.T) {
	f := paymentControllerInit(t)

	rec := f.recordPayment(t, f.transaction.ID, map[string]interface{}{
		"amount": 400.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "select a cash account")
}

func TestRecordPaymentEndpointInsufficientBalance(t *testing.T) {
	f := paymentControllerInit(t)

	rec := f.recordPayment(t, f.transaction.ID, map[string]interface{}{
		"amount":          6000.0,
		"cash_account_id": f.cashAccount.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough to cover")
}

func TestRecordPaymentEndpointDuplicateCheque(t *testing.T) {
	f := paymentControllerInit(t)

	rec := f.recordPayment(t, f.transaction.ID, map[string]interface{}{
		"amount":          100.0,
		"cash_account_id": f.cashAccount.ID,
		"cheque_no":       "CHQ-1",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.recordPayment(t, f.transaction.ID, map[string]interface{}{
		"amount":          100.0,
		"cash_account_id": f.cashAccount.ID,
		"cheque_no":       "CHQ-1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cheque number")
}

func TestRecordPaymentEndpointUnknownTransaction(t *testing.T) {
	f := paymentControllerInit(t)

	rec := f.recordPayment(t, 9999, map[string]interface{}{
		"amount":          100.0,
		"cash_account_id": f.cashAccount.ID,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
