package models

import "time"

// BankStatementBalance is the closing balance the bank reports for an account on a date.
type BankStatementBalance struct {
	BankAccountRef string
	AsOf           time.Time
	Balance        Decimal
}

type BankStatementBalanceResponse struct {
	AccountRef     string  `json:"accountRef"`
	AsOfDate       string  `json:"asOfDate"`
	ClosingBalance Decimal `json:"closingBalance"`
	Currency       string  `json:"currency"`
}
