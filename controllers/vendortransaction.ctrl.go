package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/lib/responses"
	"github.com/nagaad/idil-erp/lib/service"
)

// VendorTransactionController : Vendor transaction controller struct
type VendorTransactionController struct {
	svc *service.IdilService
}

func NewVendorTransactionController(svc *service.IdilService) *VendorTransactionController {
	return &VendorTransactionController{svc: svc}
}

type CreateTransactionRequestBody struct {
	VendorID          int64   `json:"vendor_id" validate:"required"`
	OrderNumber       string  `json:"order_number"`
	TransactionNumber string  `json:"transaction_number"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod     string  `json:"payment_method" validate:"omitempty,oneof=cash ap bank_transfer other internal"`
	ReferenceNumber   string  `json:"reffno"`
	ChequeNo          string  `json:"cheque_no"`
	CashAccountID     int64   `json:"cash_account_id"`
	ExpenseAccountID  int64   `json:"expense_account_id"`
	OrderLineID       int64   `json:"order_line_id"`
}

// CreateVendorTransaction godoc
// @Summary      Open a vendor transaction
// @Description  Creates a vendor transaction together with its ledger booking
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        CreateTransactionRequest  body      CreateTransactionRequestBody  True  "Transaction to open"
// @Success      200                       {object}  models.VendorTransaction
// @Failure      400                       {object}  responses.ErrorResponse
// @Failure      500                       {object}  responses.ErrorResponse
// @Router       /v2/transactions [post]
func (controller *VendorTransactionController) CreateVendorTransaction(c echo.Context) error {
	reqBody := CreateTransactionRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load create transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid create transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transaction, err := controller.svc.CreateVendorTransaction(c.Request().Context(), service.CreateTransactionParams{
		VendorID:          reqBody.VendorID,
		OrderNumber:       reqBody.OrderNumber,
		TransactionNumber: reqBody.TransactionNumber,
		Amount:            reqBody.Amount,
		PaymentMethod:     reqBody.PaymentMethod,
		ReferenceNumber:   reqBody.ReferenceNumber,
		ChequeNo:          reqBody.ChequeNo,
		CashAccountID:     reqBody.CashAccountID,
		ExpenseAccountID:  reqBody.ExpenseAccountID,
		OrderLineID:       reqBody.OrderLineID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}

// GetVendorTransactions godoc
// @Summary      Retrieve vendor transactions
// @Description  Returns the most recent vendor transactions, optionally for one vendor
// @Produce      json
// @Tags         Transaction
// @Param        vendor_id  query     int  false  "Vendor ID"
// @Success      200        {object}  []models.VendorTransaction
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /v2/transactions [get]
func (controller *VendorTransactionController) GetVendorTransactions(c echo.Context) error {
	var vendorID int64
	if raw := c.QueryParam("vendor_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
		}
		vendorID = parsed
	}
	transactions, err := controller.svc.VendorTransactions(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// GetVendorTransaction godoc
// @Summary      Retrieve a vendor transaction
// @Description  Returns a vendor transaction with its booking and payments
// @Produce      json
// @Tags         Transaction
// @Param        id   path      int  True  "Transaction ID"
// @Success      200  {object}  models.VendorTransaction
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/transactions/{id} [get]
func (controller *VendorTransactionController) GetVendorTransaction(c echo.Context) error {
	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	transaction, err := controller.svc.FindVendorTransaction(c.Request().Context(), transactionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, transaction)
}
