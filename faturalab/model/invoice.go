package model

import "github.com/faturalab/go-faturalab-client/faturalab/amount"

// InvoiceType enumerates the document kinds the backend accepts. The type
// determines which optional fields are semantically required: E_FATURA needs
// a document hash, E_ARSIV a tax-exclusive amount.
type InvoiceType string

const (
	EFatura InvoiceType = "E_FATURA"
	EArsiv  InvoiceType = "E_ARSIV"
	Paper   InvoiceType = "PAPER"
)

func (t InvoiceType) RequiresHashCode() bool {
	return t == EFatura
}

func (t InvoiceType) RequiresTaxExclusiveAmount() bool {
	return t == EArsiv
}

type UploadInvoiceRequest struct {
	UserEmail          string         `json:"userEmail"`
	SupplierTaxNo      string         `json:"supplierTaxNo"`
	InvoiceAmount      *amount.Amount `json:"invoiceAmount"`
	RemainingAmount    *amount.Amount `json:"remainingAmount"`
	CurrencyType       string         `json:"currencyType"`
	InvoiceDate        string         `json:"invoiceDate"`
	DueDate            string         `json:"dueDate"`
	AdditionalDueDate  string         `json:"additionalDueDate"`
	InvoiceNo          string         `json:"invoiceNo"`
	InvoiceType        InvoiceType    `json:"invoiceType"`
	HashCode           string         `json:"hashCode"`
	TaxExclusiveAmount *amount.Amount `json:"taxExclusiveAmount"`
}

type InvoiceHistoryRequest struct {
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate,omitempty"`
	OnlyLastState bool   `json:"onlyLastState"`
}

type DeleteInvoiceRequest struct {
	UserEmail     string `json:"userEmail"`
	InvoiceNo     string `json:"invoiceNo"`
	SupplierTaxNo string `json:"supplierTaxNo"`
}
