package service

import (
	"errors"

	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// Validation failures surfaced to the caller. Each aborts the write
// that raised it; nothing is persisted.
var (
	ErrCashAccountRequired = errors.New("please select a cash account before updating the paid amount")
	ErrInsufficientBalance = errors.New("the cash account balance is not enough to cover the paid amount")
	ErrChequeNumberUsed    = errors.New("a payment with this cheque number already exists, please use a unique cheque number")
	ErrBookingRequired     = errors.New("the transaction has no linked booking to post against")
)

type IdilService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}
