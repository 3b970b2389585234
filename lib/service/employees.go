package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/nagaad/idil-erp/db/models"
	"github.com/uptrace/bun"
)

type CreateEmployeeParams struct {
	Name                string
	CompanyID           int64
	DepartmentID        int64
	PrivatePhone        string
	PrivateEmail        string
	Gender              string
	Marital             string
	EmployeeType        string
	Pin                 string
	Image               []byte
	CurrencyID          int64
	CommissionAccountID int64
	Commission          float64
	Salary              float64
	Bonus               float64
	ContractStartDate   *time.Time
	ContractEndDate     *time.Time
	ContractType        string
	LeaveBalance        float64
	MakerChecker        bool
}

// UpdateEmployeeParams is a partial update. A nil field keeps the value
// already on the record, matching the fall-back-to-current contract of
// the HR mirror.
type UpdateEmployeeParams struct {
	Name                *string
	CompanyID           *int64
	DepartmentID        *int64
	PrivatePhone        *string
	PrivateEmail        *string
	Gender              *string
	Marital             *string
	EmployeeType        *string
	Pin                 *string
	Image               []byte
	CurrencyID          *int64
	CommissionAccountID *int64
	Commission          *float64
	Salary              *float64
	Bonus               *float64
	ContractStartDate   *time.Time
	ContractEndDate     *time.Time
	ContractType        *string
	LeaveBalance        *float64
	MakerChecker        *bool
}

// CreateEmployee inserts the employee together with its companion
// hr_employee record in one transaction and stores the companion id on
// the employee.
func (svc *IdilService) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (*models.Employee, error) {
	employee := &models.Employee{
		Name:                params.Name,
		CompanyID:           params.CompanyID,
		DepartmentID:        params.DepartmentID,
		PrivatePhone:        params.PrivatePhone,
		PrivateEmail:        params.PrivateEmail,
		Gender:              params.Gender,
		Marital:             params.Marital,
		EmployeeType:        params.EmployeeType,
		Pin:                 params.Pin,
		Image:               params.Image,
		CurrencyID:          params.CurrencyID,
		CommissionAccountID: params.CommissionAccountID,
		Commission:          params.Commission,
		Salary:              params.Salary,
		Bonus:               params.Bonus,
		ContractType:        params.ContractType,
		LeaveBalance:        params.LeaveBalance,
		MakerChecker:        params.MakerChecker,
	}
	if params.ContractStartDate != nil {
		employee.ContractStartDate = bun.NullTime{Time: *params.ContractStartDate}
	}
	if params.ContractEndDate != nil {
		employee.ContractEndDate = bun.NullTime{Time: *params.ContractEndDate}
	}
	employee.Status = employee.ComputeStatus(time.Now())
	employee.TotalCompensation = employee.ComputeTotalCompensation()

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(employee).Exec(ctx); err != nil {
			return err
		}
		companion := companionFor(employee)
		if _, err := tx.NewInsert().Model(companion).Exec(ctx); err != nil {
			return err
		}
		employee.HrEmployeeID = companion.ID
		_, err := tx.NewUpdate().Model(employee).Column("hr_employee_id").WherePK().Exec(ctx)
		return err
	})
	return employee, err
}

// UpdateEmployee applies a partial update, recomputes the derived
// fields and re-syncs the HR companion record.
func (svc *IdilService) UpdateEmployee(ctx context.Context, employeeID int64, params UpdateEmployeeParams) (*models.Employee, error) {
	employee, err := svc.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	applyEmployeeUpdate(employee, params)
	employee.Status = employee.ComputeStatus(time.Now())
	employee.TotalCompensation = employee.ComputeTotalCompensation()

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model(employee).WherePK().Exec(ctx); err != nil {
			return err
		}
		return svc.syncCompanion(ctx, tx, employee)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (svc *IdilService) FindEmployee(ctx context.Context, employeeID int64) (*models.Employee, error) {
	var employee models.Employee

	err := svc.DB.NewSelect().Model(&employee).Where("employee.id = ?", employeeID).Limit(1).Scan(ctx)
	if err != nil {
		return &employee, err
	}
	return &employee, nil
}

func (svc *IdilService) Employees(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := svc.DB.NewSelect().Model(&employees).OrderExpr("name ASC").Limit(100).Scan(ctx)
	return employees, err
}

func (svc *IdilService) FindHrEmployee(ctx context.Context, hrEmployeeID int64) (*models.HrEmployee, error) {
	var hrEmployee models.HrEmployee

	err := svc.DB.NewSelect().Model(&hrEmployee).Where("hr_employee.id = ?", hrEmployeeID).Limit(1).Scan(ctx)
	if err != nil {
		return &hrEmployee, err
	}
	return &hrEmployee, nil
}

// syncCompanion writes the mirrored field subset to the companion
// record. Employees created before the back-reference existed are
// located by name; when that finds nothing the sync is skipped.
func (svc *IdilService) syncCompanion(ctx context.Context, tx bun.Tx, employee *models.Employee) error {
	companion := &models.HrEmployee{}

	query := tx.NewSelect().Model(companion).Limit(1)
	if employee.HrEmployeeID != 0 {
		query = query.Where("hr_employee.id = ?", employee.HrEmployeeID)
	} else {
		query = query.Where("name = ?", employee.Name)
	}
	err := query.Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			svc.Logger.Debugf("No HR companion record for employee employee_id:%v", employee.ID)
			return nil
		}
		return err
	}

	mirror := companionFor(employee)
	mirror.ID = companion.ID
	// keep the original creation timestamp, the full-model update would
	// otherwise write NULL into the not-null column
	mirror.CreatedAt = companion.CreatedAt
	if _, err := tx.NewUpdate().Model(mirror).WherePK().Exec(ctx); err != nil {
		return err
	}

	if employee.HrEmployeeID == 0 {
		employee.HrEmployeeID = companion.ID
		_, err = tx.NewUpdate().Model(employee).Column("hr_employee_id").WherePK().Exec(ctx)
		return err
	}
	return nil
}

func companionFor(employee *models.Employee) *models.HrEmployee {
	return &models.HrEmployee{
		Name:         employee.Name,
		CompanyID:    employee.CompanyID,
		PrivatePhone: employee.PrivatePhone,
		PrivateEmail: employee.PrivateEmail,
		Gender:       employee.Gender,
		Marital:      employee.Marital,
		EmployeeType: employee.EmployeeType,
		Pin:          employee.Pin,
		Image:        employee.Image,
	}
}

func applyEmployeeUpdate(employee *models.Employee, params UpdateEmployeeParams) {
	if params.Name != nil {
		employee.Name = *params.Name
	}
	if params.CompanyID != nil {
		employee.CompanyID = *params.CompanyID
	}
	if params.DepartmentID != nil {
		employee.DepartmentID = *params.DepartmentID
	}
	if params.PrivatePhone != nil {
		employee.PrivatePhone = *params.PrivatePhone
	}
	if params.PrivateEmail != nil {
		employee.PrivateEmail = *params.PrivateEmail
	}
	if params.Gender != nil {
		employee.Gender = *params.Gender
	}
	if params.Marital != nil {
		employee.Marital = *params.Marital
	}
	if params.EmployeeType != nil {
		employee.EmployeeType = *params.EmployeeType
	}
	if params.Pin != nil {
		employee.Pin = *params.Pin
	}
	if params.Image != nil {
		employee.Image = params.Image
	}
	if params.CurrencyID != nil {
		employee.CurrencyID = *params.CurrencyID
	}
	if params.CommissionAccountID != nil {
		employee.CommissionAccountID = *params.CommissionAccountID
	}
	if params.Commission != nil {
		employee.Commission = *params.Commission
	}
	if params.Salary != nil {
		employee.Salary = *params.Salary
	}
	if params.Bonus != nil {
		employee.Bonus = *params.Bonus
	}
	if params.ContractStartDate != nil {
		employee.ContractStartDate = bun.NullTime{Time: *params.ContractStartDate}
	}
	if params.ContractEndDate != nil {
		employee.ContractEndDate = bun.NullTime{Time: *params.ContractEndDate}
	}
	if params.ContractType != nil {
		employee.ContractType = *params.ContractType
	}
	if params.LeaveBalance != nil {
		employee.LeaveBalance = *params.LeaveBalance
	}
	if params.MakerChecker != nil {
		employee.MakerChecker = *params.MakerChecker
	}
}
