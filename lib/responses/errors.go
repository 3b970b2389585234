package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var NotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "record not found",
	HttpStatusCode: 404,
}

var CashAccountRequiredError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "please select a cash account before updating the paid amount",
	HttpStatusCode: 400,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "the cash account balance is not enough to cover the paid amount",
	HttpStatusCode: 400,
}

var ChequeNumberUsedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "a payment with this cheque number already exists, please use a unique cheque number",
	HttpStatusCode: 400,
}

var BookingRequiredError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "the transaction has no linked booking to post against",
	HttpStatusCode: 400,
}

// isErrAllowedForSentry keeps auth failures out of sentry, they are
// caller mistakes and not ours.
func isErrAllowedForSentry(err error) bool {
	httpError, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	errMap, ok := httpError.Message.(echo.Map)
	if !ok {
		return true
	}
	code, ok := errMap["code"].(int)
	if !ok {
		return true
	}
	return code != BadAuthError.Code
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if isErrAllowedForSentry(err) {
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
				hub.CaptureException(err)
			})
		}
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}
