package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/lib/responses"
	"github.com/nagaad/idil-erp/lib/service"
)

// AccountController : Chart account controller struct
type AccountController struct {
	svc *service.IdilService
}

func NewAccountController(svc *service.IdilService) *AccountController {
	return &AccountController{svc: svc}
}

type BalanceResponseBody struct {
	AccountID int64   `json:"account_id"`
	Balance   float64 `json:"balance"`
}

type OpeningBalanceRequestBody struct {
	AccountID       int64   `json:"account_id" validate:"required"`
	EquityAccountID int64   `json:"equity_account_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}

// Balance godoc
// @Summary      Retrieve an account balance
// @Description  Sum of debit postings minus sum of credit postings for the account
// @Produce      json
// @Tags         Account
// @Param        id   path      int  True  "Account ID"
// @Success      200  {object}  BalanceResponseBody
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/accounts/{id}/balance [get]
func (controller *AccountController) Balance(c echo.Context) error {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	account, err := controller.svc.FindAccount(c.Request().Context(), accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	balance, err := controller.svc.AccountBalance(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &BalanceResponseBody{
		AccountID: account.ID,
		Balance:   balance,
	})
}

// OpeningBalance godoc
// @Summary      Fund an account
// @Description  Posts an opening balance booking: debit the account, credit equity
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        OpeningBalanceRequest  body      OpeningBalanceRequestBody  True  "Opening balance to post"
// @Success      200                    {object}  models.TransactionBooking
// @Failure      400                    {object}  responses.ErrorResponse
// @Failure      500                    {object}  responses.ErrorResponse
// @Router       /v2/accounts/opening-balance [post]
func (controller *AccountController) OpeningBalance(c echo.Context) error {
	reqBody := OpeningBalanceRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load opening balance request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid opening balance request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	booking, err := controller.svc.RecordOpeningBalance(c.Request().Context(), reqBody.AccountID, reqBody.EquityAccountID, reqBody.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
