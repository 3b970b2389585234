package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/nagaad/idil-erp/common"
	"github.com/nagaad/idil-erp/db/models"
	"github.com/nagaad/idil-erp/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeTestInit(t *testing.T) (*service.IdilService, *models.Company, *models.Currency) {
	svc, err := idilTestServiceInit(t)
	require.NoError(t, err)
	t.Cleanup(func() { svc.DB.Close() })

	ctx := context.Background()
	currency := &models.Currency{Code: "USD", Name: "US Dollar", Symbol: "$"}
	_, err = svc.DB.NewInsert().Model(currency).Exec(ctx)
	require.NoError(t, err)
	company := &models.Company{Name: "Nagaad Group", CurrencyID: currency.ID}
	_, err = svc.DB.NewInsert().Model(company).Exec(ctx)
	require.NoError(t, err)
	return svc, company, currency
}

func TestCreateEmployeeCreatesCompanion(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:         "Amina Warsame",
		CompanyID:    company.ID,
		CurrencyID:   currency.ID,
		PrivatePhone: "063445566",
		PrivateEmail: "amina@example.com",
		Gender:       "female",
		Marital:      "married",
		EmployeeType: "employee",
		Pin:          "4321",
		Salary:       800,
		Bonus:        200,
	})
	require.NoError(t, err)
	require.NotZero(t, employee.HrEmployeeID)

	companion, err := svc.FindHrEmployee(ctx, employee.HrEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, "Amina Warsame", companion.Name)
	assert.Equal(t, company.ID, companion.CompanyID)
	assert.Equal(t, "063445566", companion.PrivatePhone)
	assert.Equal(t, "amina@example.com", companion.PrivateEmail)
	assert.Equal(t, "female", companion.Gender)
	assert.Equal(t, "married", companion.Marital)
	assert.Equal(t, "employee", companion.EmployeeType)
	assert.Equal(t, "4321", companion.Pin)

	assert.InDelta(t, 1000, employee.TotalCompensation, 0.001)
}

func TestEmployeeStatusDerivation(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()
	today := time.Now()

	// started contract with no end date on file is inactive
	started, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:              "Omar Ali",
		CompanyID:         company.ID,
		CurrencyID:        currency.ID,
		ContractStartDate: &today,
	})
	require.NoError(t, err)
	assert.Equal(t, common.EmployeeStatusInactive, started.Status)

	// no contract dates at all means active
	open, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:       "Khadra Hussein",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, common.EmployeeStatusActive, open.Status)

	// ended contract is inactive
	start := today.AddDate(-1, 0, 0)
	end := today.AddDate(0, 0, -1)
	ended, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:              "Yusuf Adan",
		CompanyID:         company.ID,
		CurrencyID:        currency.ID,
		ContractStartDate: &start,
		ContractEndDate:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, common.EmployeeStatusInactive, ended.Status)

	// a future end date keeps the employee active
	futureEnd := today.AddDate(1, 0, 0)
	active, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:              "Filsan Abdi",
		CompanyID:         company.ID,
		CurrencyID:        currency.ID,
		ContractStartDate: &start,
		ContractEndDate:   &futureEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, common.EmployeeStatusActive, active.Status)
}

func TestUpdateEmployeeSyncsCompanion(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:         "Amina Warsame",
		CompanyID:    company.ID,
		CurrencyID:   currency.ID,
		PrivatePhone: "063445566",
	})
	require.NoError(t, err)

	newPhone := "063998877"
	updated, err := svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		PrivatePhone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.PrivatePhone)
	// untouched fields fall back to the current record
	assert.Equal(t, "Amina Warsame", updated.Name)

	companion, err := svc.FindHrEmployee(ctx, employee.HrEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, newPhone, companion.PrivatePhone)
	assert.Equal(t, "Amina Warsame", companion.Name)
}

func TestCompanionSyncKeepsCreatedAt(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:       "Amina Warsame",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)

	before, err := svc.FindHrEmployee(ctx, employee.HrEmployeeID)
	require.NoError(t, err)
	require.False(t, before.CreatedAt.IsZero())

	newPhone := "063998877"
	_, err = svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		PrivatePhone: &newPhone,
	})
	require.NoError(t, err)

	after, err := svc.FindHrEmployee(ctx, employee.HrEmployeeID)
	require.NoError(t, err)
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Second)
	assert.False(t, after.UpdatedAt.IsZero())
}

func TestRenameKeepsCompanionLinked(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:       "Amina Warsame",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)

	newName := "Amina Warsame-Caseyr"
	updated, err := svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, employee.HrEmployeeID, updated.HrEmployeeID)

	companion, err := svc.FindHrEmployee(ctx, employee.HrEmployeeID)
	require.NoError(t, err)
	assert.Equal(t, newName, companion.Name)
}

func TestUpdateWithoutCompanionIsSilentlySkipped(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	// a legacy row created without a companion or back-reference
	employee := &models.Employee{
		Name:       "Legacy Import",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
		Status:     common.EmployeeStatusActive,
	}
	_, err := svc.DB.NewInsert().Model(employee).Exec(ctx)
	require.NoError(t, err)

	newPhone := "063112233"
	updated, err := svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		PrivatePhone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.PrivatePhone)
	assert.Zero(t, updated.HrEmployeeID)
}

func TestLegacyEmployeeRelinkedByName(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	// companion exists but the back-reference was never stored
	companion := &models.HrEmployee{Name: "Legacy Import"}
	_, err := svc.DB.NewInsert().Model(companion).Exec(ctx)
	require.NoError(t, err)
	employee := &models.Employee{
		Name:       "Legacy Import",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
		Status:     common.EmployeeStatusActive,
	}
	_, err = svc.DB.NewInsert().Model(employee).Exec(ctx)
	require.NoError(t, err)

	newPhone := "063112233"
	updated, err := svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		PrivatePhone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, companion.ID, updated.HrEmployeeID)

	synced, err := svc.FindHrEmployee(ctx, companion.ID)
	require.NoError(t, err)
	assert.Equal(t, newPhone, synced.PrivatePhone)
	assert.Equal(t, company.ID, synced.CompanyID)
}

func TestTotalCompensationTreatsUnsetAsZero(t *testing.T) {
	svc, company, currency := employeeTestInit(t)
	ctx := context.Background()

	employee, err := svc.CreateEmployee(ctx, service.CreateEmployeeParams{
		Name:       "Sagal Nur",
		CompanyID:  company.ID,
		CurrencyID: currency.ID,
		Salary:     500,
	})
	require.NoError(t, err)
	assert.InDelta(t, 500, employee.TotalCompensation, 0.001)

	bonus := 150.0
	updated, err := svc.UpdateEmployee(ctx, employee.ID, service.UpdateEmployeeParams{
		Bonus: &bonus,
	})
	require.NoError(t, err)
	assert.InDelta(t, 650, updated.TotalCompensation, 0.001)
}
