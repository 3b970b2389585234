package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/nagaad/idil-erp/lib/responses"
	"github.com/nagaad/idil-erp/lib/service"
)

// RecordPaymentController : Record payment controller struct
type RecordPaymentController struct {
	svc *service.IdilService
}

func NewRecordPaymentController(svc *service.IdilService) *RecordPaymentController {
	return &RecordPaymentController{svc: svc}
}

type RecordPaymentRequestBody struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	CashAccountID int64   `json:"cash_account_id"`
	ChequeNo      string  `json:"cheque_no"`
}

type RecordPaymentResponseBody struct {
	Payment         *models.VendorPayment `json:"payment"`
	PaidAmount      float64               `json:"paid_amount"`
	RemainingAmount float64               `json:"remaining_amount"`
	PaymentStatus   string                `json:"payment_status"`
}

// RecordPayment godoc
// @Summary      Pay a vendor transaction
// @Description  Pays part or all of a vendor transaction out of a cash account and posts the ledger lines
// @Accept       json
// @Produce      json
// @Tags         Payment
// @Param        id                    path      int                       True  "Transaction ID"
// @Param        RecordPaymentRequest  body      RecordPaymentRequestBody  True  "Payment to record"
// @Success      200                   {object}  RecordPaymentResponseBody
// @Failure      400                   {object}  responses.ErrorResponse
// @Failure      404                   {object}  responses.ErrorResponse
// @Failure      500                   {object}  responses.ErrorResponse
// @Router       /v2/transactions/{id}/payments [post]
func (controller *RecordPaymentController) RecordPayment(c echo.Context) error {
	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	reqBody := RecordPaymentRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load record payment request body: transaction_id:%v error: %v", transactionID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid record payment request body: transaction_id:%v error: %v", transactionID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result, err := controller.svc.RecordPayment(c.Request().Context(), service.RecordPaymentParams{
		TransactionID: transactionID,
		Amount:        reqBody.Amount,
		CashAccountID: reqBody.CashAccountID,
		ChequeNo:      reqBody.ChequeNo,
	})
	if err != nil {
		c.Logger().Errorf("Payment failed transaction_id:%v error: %v", transactionID, err)
		switch {
		case errors.Is(err, service.ErrCashAccountRequired):
			return c.JSON(http.StatusBadRequest, responses.CashAccountRequiredError)
		case errors.Is(err, service.ErrInsufficientBalance):
			return c.JSON(http.StatusBadRequest, responses.NotEnoughBalanceError)
		case errors.Is(err, service.ErrChequeNumberUsed):
			return c.JSON(http.StatusBadRequest, responses.ChequeNumberUsedError)
		case errors.Is(err, service.ErrBookingRequired):
			return c.JSON(http.StatusBadRequest, responses.BookingRequiredError)
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		sentry.CaptureException(err)
		return err
	}

	return c.JSON(http.StatusOK, &RecordPaymentResponseBody{
		Payment:         result.Payment,
		PaidAmount:      result.Transaction.PaidAmount,
		RemainingAmount: result.Transaction.RemainingAmount,
		PaymentStatus:   result.Transaction.PaymentStatus,
	})
}
