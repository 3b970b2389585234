package common

const (
	PaymentStatusPending     = "pending"
	PaymentStatusPaid        = "paid"
	PaymentStatusPartialPaid = "partial_paid"

	PaymentMethodCash         = "cash"
	PaymentMethodAP           = "ap"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOther        = "other"
	PaymentMethodInternal     = "internal"

	TransactionTypeDebit  = "dr"
	TransactionTypeCredit = "cr"

	AccountTypeCash       = "cash"
	AccountTypePayable    = "payable"
	AccountTypeCommission = "commission"
	AccountTypeEquity     = "equity"
	AccountTypeExpense    = "expense"

	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)
