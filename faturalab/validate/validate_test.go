package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faturalab/go-faturalab-client/faturalab/amount"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
)

func line(invoiceAmount, requestedAmount float64) model.AuctionInvoice {
	return model.AuctionInvoice{
		InvoiceAmount:   amount.Ptr(invoiceAmount),
		RequestedAmount: amount.Ptr(requestedAmount),
		SupplierTaxNo:   "1234567890",
		InvoiceNo:       "INV1",
	}
}

func request(lines ...model.AuctionInvoice) *model.UploadAuctionRequest {
	return model.NewUploadAuctionRequest(lines, ReferencePrefix+"11111111-2222-3333-4444-555555555555", "buyer@example.com")
}

func TestAuction_ValidThreeLines(t *testing.T) {

	req := request(line(75000, 75000), line(30000, 30000), line(20000, 20000))

	result := Auction(req)

	assert.True(t, result.Valid(), result.Summary())
	assert.Empty(t, result.Errors)
	assert.Equal(t, 125000.0, req.TotalPayableAmount.Float())
}

func TestAuction_DeclaredTotalOff(t *testing.T) {

	req := request(line(75000, 75000), line(30000, 30000), line(20000, 20000))
	req.TotalPayableAmount = amount.Ptr(124999)

	result := Auction(req)

	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "declared=124999")
	assert.Contains(t, result.Errors[0], "calculated=125000")
}

func TestAuction_ToleranceBoundary(t *testing.T) {

	// rounding noise within the tolerance still reconciles
	req := request(line(100, 100))
	req.TotalPayableAmount = amount.Ptr(100.005)
	assert.True(t, Auction(req).Valid())

	// more than 0.01 does not
	req = request(line(100, 100))
	req.TotalPayableAmount = amount.Ptr(100.02)
	result := Auction(req)
	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "total payable amount mismatch")
}

// Every defect must be reported in one pass, not just the first.
func TestAuction_AccumulatesErrors(t *testing.T) {

	req := request(line(-50, 100), line(200, 200))
	req.TotalPayableAmount = amount.Ptr(9999)

	result := Auction(req)

	assert.False(t, result.Valid())
	assert.GreaterOrEqual(t, len(result.Errors), 2, result.Summary())

	var lineError, mismatchError bool
	for _, e := range result.Errors {
		if strings.Contains(e, "invoice 1 has invalid invoice amount") {
			lineError = true
		}
		if strings.Contains(e, "total payable amount mismatch") {
			mismatchError = true
		}
	}
	assert.True(t, lineError, "expected per-line error")
	assert.True(t, mismatchError, "expected reconciliation error")
}

func TestAuction_MissingAmounts(t *testing.T) {

	req := request(model.AuctionInvoice{InvoiceNo: "INV1"})

	result := Auction(req)

	assert.False(t, result.Valid())
	assert.Contains(t, result.ErrorSummary(), "invoice 1 has invalid invoice amount: null")
	assert.Contains(t, result.ErrorSummary(), "invoice 1 has invalid requested amount: null")
}

func TestAuction_AmountMismatchIsWarningOnly(t *testing.T) {

	req := request(line(1000, 950))

	result := Auction(req)

	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "mismatched amounts")
}

func TestAuction_LockFlag(t *testing.T) {

	req := request(line(100, 100))
	req.Locked = nil

	result := Auction(req)
	assert.True(t, result.Valid(), "missing lock is advisory")
	assert.Contains(t, result.WarningSummary(), "locked")

	unlocked := false
	req.Locked = &unlocked
	result = Auction(req)
	assert.Contains(t, result.WarningSummary(), "locked")
}

func TestAuction_ReferenceNumber(t *testing.T) {

	req := request(line(100, 100))
	req.ReferenceNo = "  "

	result := Auction(req)
	assert.False(t, result.Valid())
	assert.Contains(t, result.ErrorSummary(), "reference number")

	req.ReferenceNo = "CUSTOM-REF-1"
	result = Auction(req)
	assert.True(t, result.Valid(), "non-conforming prefix is advisory")
	assert.Contains(t, result.WarningSummary(), "recommended format")
}

func TestAuction_Fatal(t *testing.T) {

	result := Auction(nil)
	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 1)

	result = Auction(&model.UploadAuctionRequest{})
	assert.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invoice list")
}

func TestAuction_Pure(t *testing.T) {

	req := request(line(100, 100))
	before := *req.TotalPayableAmount

	Auction(req)

	assert.Equal(t, before, *req.TotalPayableAmount)
	assert.True(t, *req.Locked)
}
