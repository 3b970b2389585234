package controllers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nagaad/idil-erp/lib/responses"
	"github.com/nagaad/idil-erp/lib/service"
)

// EmployeeController : Employee controller struct
type EmployeeController struct {
	svc *service.IdilService
}

func NewEmployeeController(svc *service.IdilService) *EmployeeController {
	return &EmployeeController{svc: svc}
}

const dateLayout = "2006-01-02"

type CreateEmployeeRequestBody struct {
	Name                string  `json:"name" validate:"required"`
	CompanyID           int64   `json:"company_id" validate:"required"`
	DepartmentID        int64   `json:"department_id"`
	PrivatePhone        string  `json:"private_phone"`
	PrivateEmail        string  `json:"private_email" validate:"omitempty,email"`
	Gender              string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Marital             string  `json:"marital" validate:"omitempty,oneof=single married cohabitant widower divorced"`
	EmployeeType        string  `json:"employee_type" validate:"omitempty,oneof=employee student trainee contractor freelance"`
	Pin                 string  `json:"pin"`
	Image               []byte  `json:"image"`
	CurrencyID          int64   `json:"currency_id" validate:"required"`
	CommissionAccountID int64   `json:"commission_account_id"`
	Commission          float64 `json:"commission"`
	Salary              float64 `json:"salary" validate:"gte=0"`
	Bonus               float64 `json:"bonus" validate:"gte=0"`
	ContractStartDate   string  `json:"contract_start_date" validate:"omitempty,datetime=2006-01-02"`
	ContractEndDate     string  `json:"contract_end_date" validate:"omitempty,datetime=2006-01-02"`
	ContractType        string  `json:"contract_type" validate:"omitempty,oneof=permanent temporary internship freelance"`
	LeaveBalance        float64 `json:"leave_balance"`
	MakerChecker        bool    `json:"maker_checker"`
}

type UpdateEmployeeRequestBody struct {
	Name                *string  `json:"name"`
	CompanyID           *int64   `json:"company_id"`
	DepartmentID        *int64   `json:"department_id"`
	PrivatePhone        *string  `json:"private_phone"`
	PrivateEmail        *string  `json:"private_email" validate:"omitempty,email"`
	Gender              *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Marital             *string  `json:"marital" validate:"omitempty,oneof=single married cohabitant widower divorced"`
	EmployeeType        *string  `json:"employee_type" validate:"omitempty,oneof=employee student trainee contractor freelance"`
	Pin                 *string  `json:"pin"`
	Image               []byte   `json:"image"`
	CurrencyID          *int64   `json:"currency_id"`
	CommissionAccountID *int64   `json:"commission_account_id"`
	Commission          *float64 `json:"commission"`
	Salary              *float64 `json:"salary" validate:"omitempty,gte=0"`
	Bonus               *float64 `json:"bonus" validate:"omitempty,gte=0"`
	ContractStartDate   *string  `json:"contract_start_date" validate:"omitempty,datetime=2006-01-02"`
	ContractEndDate     *string  `json:"contract_end_date" validate:"omitempty,datetime=2006-01-02"`
	ContractType        *string  `json:"contract_type" validate:"omitempty,oneof=permanent temporary internship freelance"`
	LeaveBalance        *float64 `json:"leave_balance"`
	MakerChecker        *bool    `json:"maker_checker"`
}

// CreateEmployee godoc
// @Summary      Create an employee
// @Description  Creates an employee and its HR companion record
// @Accept       json
// @Produce      json
// @Tags         Employee
// @Param        CreateEmployeeRequest  body      CreateEmployeeRequestBody  True  "Employee to create"
// @Success      200                    {object}  models.Employee
// @Failure      400                    {object}  responses.ErrorResponse
// @Failure      500                    {object}  responses.ErrorResponse
// @Router       /v2/employees [post]
func (controller *EmployeeController) CreateEmployee(c echo.Context) error {
	reqBody := CreateEmployeeRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load create employee request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid create employee request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	params := service.CreateEmployeeParams{
		Name:                reqBody.Name,
		CompanyID:           reqBody.CompanyID,
		DepartmentID:        reqBody.DepartmentID,
		PrivatePhone:        reqBody.PrivatePhone,
		PrivateEmail:        reqBody.PrivateEmail,
		Gender:              reqBody.Gender,
		Marital:             reqBody.Marital,
		EmployeeType:        reqBody.EmployeeType,
		Pin:                 reqBody.Pin,
		Image:               reqBody.Image,
		CurrencyID:          reqBody.CurrencyID,
		CommissionAccountID: reqBody.CommissionAccountID,
		Commission:          reqBody.Commission,
		Salary:              reqBody.Salary,
		Bonus:               reqBody.Bonus,
		ContractType:        reqBody.ContractType,
		LeaveBalance:        reqBody.LeaveBalance,
		MakerChecker:        reqBody.MakerChecker,
	}
	if reqBody.ContractStartDate != "" {
		startDate, _ := time.Parse(dateLayout, reqBody.ContractStartDate)
		params.ContractStartDate = &startDate
	}
	if reqBody.ContractEndDate != "" {
		endDate, _ := time.Parse(dateLayout, reqBody.ContractEndDate)
		params.ContractEndDate = &endDate
	}

	employee, err := controller.svc.CreateEmployee(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// UpdateEmployee godoc
// @Summary      Update an employee
// @Description  Applies a partial update and re-syncs the HR companion record
// @Accept       json
// @Produce      json
// @Tags         Employee
// @Param        id                     path      int                        True  "Employee ID"
// @Param        UpdateEmployeeRequest  body      UpdateEmployeeRequestBody  True  "Fields to update"
// @Success      200                    {object}  models.Employee
// @Failure      400                    {object}  responses.ErrorResponse
// @Failure      404                    {object}  responses.ErrorResponse
// @Router       /v2/employees/{id} [put]
func (controller *EmployeeController) UpdateEmployee(c echo.Context) error {
	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	reqBody := UpdateEmployeeRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load update employee request body: employee_id:%v error: %v", employeeID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid update employee request body: employee_id:%v error: %v", employeeID, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	params := service.UpdateEmployeeParams{
		Name:                reqBody.Name,
		CompanyID:           reqBody.CompanyID,
		DepartmentID:        reqBody.DepartmentID,
		PrivatePhone:        reqBody.PrivatePhone,
		PrivateEmail:        reqBody.PrivateEmail,
		Gender:              reqBody.Gender,
		Marital:             reqBody.Marital,
		EmployeeType:        reqBody.EmployeeType,
		Pin:                 reqBody.Pin,
		Image:               reqBody.Image,
		CurrencyID:          reqBody.CurrencyID,
		CommissionAccountID: reqBody.CommissionAccountID,
		Commission:          reqBody.Commission,
		Salary:              reqBody.Salary,
		Bonus:               reqBody.Bonus,
		ContractType:        reqBody.ContractType,
		LeaveBalance:        reqBody.LeaveBalance,
		MakerChecker:        reqBody.MakerChecker,
	}
	if reqBody.ContractStartDate != nil {
		startDate, _ := time.Parse(dateLayout, *reqBody.ContractStartDate)
		params.ContractStartDate = &startDate
	}
	if reqBody.ContractEndDate != nil {
		endDate, _ := time.Parse(dateLayout, *reqBody.ContractEndDate)
		params.ContractEndDate = &endDate
	}

	employee, err := controller.svc.UpdateEmployee(c.Request().Context(), employeeID, params)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// GetEmployees godoc
// @Summary      Retrieve employees
// @Description  Returns employees ordered by name
// @Produce      json
// @Tags         Employee
// @Success      200  {object}  []models.Employee
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/employees [get]
func (controller *EmployeeController) GetEmployees(c echo.Context) error {
	employees, err := controller.svc.Employees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// GetEmployee godoc
// @Summary      Retrieve an employee
// @Description  Returns a single employee by id
// @Produce      json
// @Tags         Employee
// @Param        id   path      int  True  "Employee ID"
// @Success      200  {object}  models.Employee
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/employees/{id} [get]
func (controller *EmployeeController) GetEmployee(c echo.Context) error {
	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	employee, err := controller.svc.FindEmployee(c.Request().Context(), employeeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, responses.NotFoundError)
		}
		return err
	}
	return c.JSON(http.StatusOK, employee)
}
