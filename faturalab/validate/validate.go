// Package validate reconciles auction payloads before submission so a single
// pass surfaces every defect in a test fixture.
package validate

import (
	"math"
	"strings"

	"github.com/faturalab/go-faturalab-client/faturalab/amount"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
)

const (
	// AmountTolerance is the absolute slack allowed between a declared total
	// and the sum of its lines. A difference of exactly this much still
	// reconciles.
	AmountTolerance = 0.01

	// ReferencePrefix is the advisory reference-number convention. The
	// backend accepts non-conforming references, so a deviation is only a
	// warning.
	ReferencePrefix = "TEST-AUC-"
)

// Auction checks an upload payload for structural completeness, per-line
// amounts, total reconciliation, the lock flag and the reference format.
// All checks accumulate; only a nil request or an empty line list aborts
// early. The function is pure: it never touches the request.
func Auction(req *model.UploadAuctionRequest) *model.ValidationResult {
	result := &model.ValidationResult{}

	if req == nil {
		result.AddError("upload request is nil")
		return result
	}
	if len(req.Invoices) == 0 {
		result.AddError("invoice list is nil or empty")
		return result
	}

	for i, inv := range req.Invoices {
		if inv.InvoiceAmount == nil || inv.InvoiceAmount.Float() <= 0 {
			result.AddErrorf("invoice %d has invalid invoice amount: %s", i+1, amountText(inv.InvoiceAmount))
		}
		if inv.RequestedAmount == nil || inv.RequestedAmount.Float() <= 0 {
			result.AddErrorf("invoice %d has invalid requested amount: %s", i+1, amountText(inv.RequestedAmount))
		}

		// Equal amounts are not required, a mismatch is informational only.
		if inv.InvoiceAmount != nil && inv.RequestedAmount != nil &&
			inv.InvoiceAmount.Float() != inv.RequestedAmount.Float() {
			result.AddWarningf("invoice %d has mismatched amounts: invoice=%s, requested=%s",
				i+1, amountText(inv.InvoiceAmount), amountText(inv.RequestedAmount))
		}
	}

	if req.TotalPayableAmount == nil || req.TotalPayableAmount.Float() <= 0 {
		result.AddErrorf("total payable amount is invalid: %s", amountText(req.TotalPayableAmount))
	}
	if req.TotalRequestedAmount == nil || req.TotalRequestedAmount.Float() <= 0 {
		result.AddErrorf("total requested amount is invalid: %s", amountText(req.TotalRequestedAmount))
	}

	if req.TotalPayableAmount != nil && req.TotalRequestedAmount != nil {
		var calcPayable, calcRequested float64
		for _, inv := range req.Invoices {
			calcPayable += inv.InvoiceAmount.Float()
			calcRequested += inv.RequestedAmount.Float()
		}

		if math.Abs(calcPayable-req.TotalPayableAmount.Float()) > AmountTolerance {
			result.AddErrorf("total payable amount mismatch: declared=%s, calculated=%s",
				amount.Encode(req.TotalPayableAmount.Float()), amount.Encode(calcPayable))
		}
		if math.Abs(calcRequested-req.TotalRequestedAmount.Float()) > AmountTolerance {
			result.AddErrorf("total requested amount mismatch: declared=%s, calculated=%s",
				amount.Encode(req.TotalRequestedAmount.Float()), amount.Encode(calcRequested))
		}
	}

	if req.Locked == nil || !*req.Locked {
		result.AddWarning("auction should be locked (locked: true)")
	}

	if strings.TrimSpace(req.ReferenceNo) == "" {
		result.AddError("reference number is null or empty")
	} else if !strings.HasPrefix(req.ReferenceNo, ReferencePrefix) {
		result.AddWarningf("reference number does not follow recommended format: %s<UUID>", ReferencePrefix)
	}

	return result
}

func amountText(a *amount.Amount) string {
	if a == nil {
		return "null"
	}
	return amount.Encode(a.Float())
}
