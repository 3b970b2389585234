package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// HrEmployee : HR Companion Record Model
//
// Mirror of the employee field subset kept in the HR module's own store.
type HrEmployee struct {
	bun.BaseModel `bun:"hr_employee"`

	ID           int64        `json:"id" bun:",pk,autoincrement"`
	Name         string       `json:"name" bun:",notnull"`
	CompanyID    int64        `json:"company_id" bun:",nullzero"`
	Company      *Company     `json:"-" bun:"rel:belongs-to,join:company_id=id"`
	PrivatePhone string       `json:"private_phone" bun:",nullzero"`
	PrivateEmail string       `json:"private_email" bun:",nullzero"`
	Gender       string       `json:"gender" bun:",nullzero"`
	Marital      string       `json:"marital" bun:",nullzero"`
	EmployeeType string       `json:"employee_type" bun:",nullzero"`
	Pin          string       `json:"pin" bun:",nullzero"`
	Image        []byte       `json:"-" bun:",nullzero"`
	CreatedAt    time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    bun.NullTime `json:"updated_at"`
}

func (e *HrEmployee) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		e.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}
