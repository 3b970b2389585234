package transport

import (
	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/controllers"
	"github.com/nagaad/idil-erp/lib/service"
)

func RegisterEndpoints(svc *service.IdilService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group) {
	e.GET("/health", controllers.NewHealthController().Check)

	vendorCtrl := controllers.NewVendorController(svc)
	secured.POST("/v2/vendors", vendorCtrl.CreateVendor)
	secured.GET("/v2/vendors", vendorCtrl.GetVendors)
	secured.GET("/v2/vendors/:id", vendorCtrl.GetVendor)

	transactionCtrl := controllers.NewVendorTransactionController(svc)
	secured.POST("/v2/transactions", transactionCtrl.CreateVendorTransaction)
	secured.GET("/v2/transactions", transactionCtrl.GetVendorTransactions)
	secured.GET("/v2/transactions/:id", transactionCtrl.GetVendorTransaction)

	// the reconciliation entry point, rate limited like any endpoint
	// that moves money
	securedWithStrictRateLimit.POST("/v2/transactions/:id/payments", controllers.NewRecordPaymentController(svc).RecordPayment)

	accountCtrl := controllers.NewAccountController(svc)
	secured.GET("/v2/accounts/:id/balance", accountCtrl.Balance)
	secured.POST("/v2/accounts/opening-balance", accountCtrl.OpeningBalance)

	employeeCtrl := controllers.NewEmployeeController(svc)
	secured.POST("/v2/employees", employeeCtrl.CreateEmployee)
	secured.PUT("/v2/employees/:id", employeeCtrl.UpdateEmployee)
	secured.GET("/v2/employees", employeeCtrl.GetEmployees)
	secured.GET("/v2/employees/:id", employeeCtrl.GetEmployee)
}
