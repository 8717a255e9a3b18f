package model

import "github.com/faturalab/go-faturalab-client/faturalab/amount"

// AuctionInvoice is one financed line of an auction submission. It carries
// everything an upload invoice does plus the requested (financed) portion
// and package/order/item identifiers.
type AuctionInvoice struct {
	CurrencyType       string         `json:"currencyType"`
	DueDate            string         `json:"dueDate"`
	ExtraInvoiceDueDay int            `json:"extraInvoiceDueDay"`
	TaxExclusiveAmount *amount.Amount `json:"taxExclusiveAmount"`
	InvoiceAmount      *amount.Amount `json:"invoiceAmount"`
	RequestedAmount    *amount.Amount `json:"requestedAmount"`
	InvoiceDate        string         `json:"invoiceDate"`
	InvoiceType        InvoiceType    `json:"invoiceType"`
	InvoiceETTN        string         `json:"invoiceETTN"`
	InvoiceTypeCode    string         `json:"invoiceTypeCode"`
	PackageNo          string         `json:"packageNo"`
	OrderNo            string         `json:"orderNo"`
	ItemNo             string         `json:"itemNo"`
	SupplierTaxNo      string         `json:"supplierTaxNo"`
	InvoiceNo          string         `json:"invoiceNo"`
}

type UploadAuctionRequest struct {
	Invoices             []AuctionInvoice `json:"invoices"`
	Locked               *bool            `json:"locked"`
	TotalPayableAmount   *amount.Amount   `json:"totalPayableAmount"`
	TotalRequestedAmount *amount.Amount   `json:"totalRequestedAmount"`
	ReferenceNo          string           `json:"referenceNo"`
	UserEmail            string           `json:"userEmail"`
}

// NewUploadAuctionRequest derives the declared totals from the lines and
// locks the submission, which the backend requires for acceptance.
func NewUploadAuctionRequest(invoices []AuctionInvoice, referenceNo, userEmail string) *UploadAuctionRequest {
	var payable, requested float64
	for _, inv := range invoices {
		payable += inv.InvoiceAmount.Float()
		requested += inv.RequestedAmount.Float()
	}

	locked := true
	return &UploadAuctionRequest{
		Invoices:             invoices,
		Locked:               &locked,
		TotalPayableAmount:   amount.Ptr(payable),
		TotalRequestedAmount: amount.Ptr(requested),
		ReferenceNo:          referenceNo,
		UserEmail:            userEmail,
	}
}

type AuctionDetailRequest struct {
	ReferenceNo string `json:"referenceNo"`
	UserEmail   string `json:"userEmail"`
}

type RejectAuctionRequest struct {
	ReferenceNo  string `json:"referenceNo"`
	UserEmail    string `json:"userEmail"`
	RejectReason string `json:"rejectReason,omitempty"`
}
