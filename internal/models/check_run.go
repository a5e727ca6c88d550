package models

import (
	"strconv"
	"time"
)

const kindCheckRun = "checkRun"

const CheckRunStatusIssued = "issued"

type CheckRun struct {
	ID                 string
	TrustAccountID     string
	ConsolidateByPayee bool
	CheckCount         int
	TotalAmount        Decimal
	FirstCheckNumber   int64
	LastCheckNumber    int64
	Status             string
	Items              []CheckRunItem
	CreatedAt          time.Time
}

// CheckRunItem is one payment instrument, carrying everything the print collaborator needs.
type CheckRunItem struct {
	ID             string
	CheckRunID     string
	CheckNumber    int64
	VendorID       string
	PayeeName      string
	ClientLedgerID string
	Amount         Decimal
	AmountInWords  string
	Memo           string
	PayableIDs     []string
	TransactionID  string
}

func (r CheckRun) ToModelResponse() CheckRunOut {
	items := make([]CheckRunItemOut, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, CheckRunItemOut{
			CheckNumber:    strconv.FormatInt(it.CheckNumber, 10),
			VendorID:       it.VendorID,
			PayeeName:      it.PayeeName,
			ClientLedgerID: it.ClientLedgerID,
			Amount:         it.Amount.StringFixed(MinorUnitPlaces),
			AmountInWords:  it.AmountInWords,
			Memo:           it.Memo,
			PayableIDs:     it.PayableIDs,
			TransactionID:  it.TransactionID,
		})
	}
	return CheckRunOut{
		Kind:               kindCheckRun,
		ID:                 r.ID,
		TrustAccountID:     r.TrustAccountID,
		ConsolidateByPayee: r.ConsolidateByPayee,
		CheckCount:         r.CheckCount,
		TotalAmount:        r.TotalAmount.StringFixed(MinorUnitPlaces),
		Status:             r.Status,
		Items:              items,
		CreatedAt:          r.CreatedAt,
	}
}

type CreateCheckRunIn struct {
	TrustAccountID     string
	PayableIDs         []string
	ConsolidateByPayee bool
}

type CreateCheckRunRequest struct {
	TrustAccountID     string   `json:"trustAccountId" validate:"required"`
	PayableIDs         []string `json:"payableIds" validate:"required,min=1,dive,required"`
	ConsolidateByPayee bool     `json:"consolidateByPayee"`
}

func (r CreateCheckRunRequest) ToCreateCheckRunIn() CreateCheckRunIn {
	return CreateCheckRunIn(r)
}

type CheckRunOut struct {
	Kind               string            `json:"kind"`
	ID                 string            `json:"id"`
	TrustAccountID     string            `json:"trustAccountId"`
	ConsolidateByPayee bool              `json:"consolidateByPayee"`
	CheckCount         int               `json:"checkCount"`
	TotalAmount        string            `json:"totalAmount"`
	Status             string            `json:"status"`
	Items              []CheckRunItemOut `json:"items"`
	CreatedAt          time.Time         `json:"createdAt"`
}

type CheckRunItemOut struct {
	CheckNumber    string   `json:"checkNumber"`
	VendorID       string   `json:"vendorId"`
	PayeeName      string   `json:"payeeName"`
	ClientLedgerID string   `json:"clientLedgerId"`
	Amount         string   `json:"amount"`
	AmountInWords  string   `json:"amountInWords"`
	Memo           string   `json:"memo"`
	PayableIDs     []string `json:"payableIds"`
	TransactionID  string   `json:"transactionId"`
}

// CheckRunExportHeader is the column order of the exported print file.
var CheckRunExportHeader = []string{
	"check_number", "payee_name", "vendor_id", "amount", "amount_in_words", "memo", "payable_ids", "transaction_id",
}
