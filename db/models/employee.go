package models

import (
	"context"
	"time"

	"github.com/nagaad/idil-erp/common"
	"github.com/uptrace/bun"
)

// Employee : Employee Model
//
// The companion hr_employee row is created alongside the employee and
// referenced through HrEmployeeID so renames cannot break the linkage.
type Employee struct {
	bun.BaseModel `bun:"employee"`

	ID                  int64                    `json:"id" bun:",pk,autoincrement"`
	Name                string                   `json:"name" bun:",notnull"`
	CompanyID           int64                    `json:"company_id" bun:",notnull"`
	Company             *Company                 `json:"-" bun:"rel:belongs-to,join:company_id=id"`
	DepartmentID        int64                    `json:"department_id" bun:",nullzero"`
	Department          *EmployeeDepartment      `json:"-" bun:"rel:belongs-to,join:department_id=id"`
	PrivatePhone        string                   `json:"private_phone" bun:",nullzero"`
	PrivateEmail        string                   `json:"private_email" bun:",nullzero"`
	Gender              string                   `json:"gender" bun:",nullzero"`
	Marital             string                   `json:"marital" bun:",nullzero"`
	EmployeeType        string                   `json:"employee_type" bun:",nullzero"`
	Pin                 string                   `json:"pin" bun:",nullzero"`
	Image               []byte                   `json:"-" bun:",nullzero"`
	CurrencyID          int64                    `json:"currency_id" bun:",notnull"`
	Currency            *Currency                `json:"-" bun:"rel:belongs-to,join:currency_id=id"`
	CommissionAccountID int64                    `json:"commission_account_id" bun:",nullzero"`
	CommissionAccount   *ChartAccount            `json:"-" bun:"rel:belongs-to,join:commission_account_id=id"`
	Commission          float64                  `json:"commission"`
	Salary              float64                  `json:"salary"`
	Bonus               float64                  `json:"bonus"`
	TotalCompensation   float64                  `json:"total_compensation"`
	ContractStartDate   bun.NullTime             `json:"contract_start_date"`
	ContractEndDate     bun.NullTime             `json:"contract_end_date"`
	ContractType        string                   `json:"contract_type" bun:",nullzero"`
	Status              string                   `json:"status" bun:",default:'active'"`
	LeaveBalance        float64                  `json:"leave_balance" bun:",default:100"`
	MakerChecker        bool                     `json:"maker_checker" bun:",nullzero"`
	HrEmployeeID        int64                    `json:"hr_employee_id" bun:",nullzero"`
	HrEmployee          *HrEmployee              `json:"-" bun:"rel:belongs-to,join:hr_employee_id=id"`
	SalaryHistory       []*EmployeeSalary        `json:"salary_history,omitempty" bun:"rel:has-many,join:id=employee_id"`
	AdvanceHistory      []*EmployeeSalaryAdvance `json:"advance_history,omitempty" bun:"rel:has-many,join:id=employee_id"`
	CreatedAt           time.Time                `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt           bun.NullTime             `json:"updated_at"`
}

func (e *Employee) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		e.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

// ComputeStatus derives the active/inactive status from the contract
// dates. A contract that has ended is inactive; a started contract with
// no end date on file is inactive as well.
func (e *Employee) ComputeStatus(today time.Time) string {
	// compare calendar dates, a contract ending today is still active
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	switch {
	case !e.ContractEndDate.IsZero() && e.ContractEndDate.Time.Before(today):
		return common.EmployeeStatusInactive
	case e.ContractEndDate.IsZero() && !e.ContractStartDate.IsZero():
		return common.EmployeeStatusInactive
	default:
		return common.EmployeeStatusActive
	}
}

// ComputeTotalCompensation is salary plus bonus, unset values counting as zero.
func (e *Employee) ComputeTotalCompensation() float64 {
	return e.Salary + e.Bonus
}

// EmployeeDepartment : Employee Department Model
type EmployeeDepartment struct {
	bun.BaseModel `bun:"employee_department"`

	ID   int64  `json:"id" bun:",pk,autoincrement"`
	Name string `json:"name" bun:",notnull"`
}

// EmployeeSalary : Salary History Model
type EmployeeSalary struct {
	bun.BaseModel `bun:"employee_salary"`

	ID          int64     `json:"id" bun:",pk,autoincrement"`
	EmployeeID  int64     `json:"employee_id" bun:",notnull"`
	Employee    *Employee `json:"-" bun:"rel:belongs-to,join:employee_id=id"`
	Amount      float64   `json:"amount" bun:",notnull"`
	PaymentDate time.Time `json:"payment_date" bun:",nullzero,notnull,default:current_timestamp"`
}

// EmployeeSalaryAdvance : Salary Advance History Model
type EmployeeSalaryAdvance struct {
	bun.BaseModel `bun:"employee_salary_advance"`

	ID          int64     `json:"id" bun:",pk,autoincrement"`
	EmployeeID  int64     `json:"employee_id" bun:",notnull"`
	Employee    *Employee `json:"-" bun:"rel:belongs-to,join:employee_id=id"`
	Amount      float64   `json:"amount" bun:",notnull"`
	AdvanceDate time.Time `json:"advance_date" bun:",nullzero,notnull,default:current_timestamp"`
	Deducted    bool      `json:"deducted" bun:",nullzero"`
}
