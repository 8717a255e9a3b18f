// Package fixture generates well-formed (and deliberately broken) invoice
// and auction payloads for test scenarios. Dates are business-day aware so
// generated due dates never land on a weekend or holiday the backend would
// reject.
package fixture

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/faturalab/go-faturalab-client/faturalab/amount"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
	"github.com/faturalab/go-faturalab-client/faturalab/validate"
)

const dateLayout = "2006-01-02"

var supplierTaxNumbers = []string{
	"1234567890", "9876543210", "5555555555", "1111111111",
}

// Generator produces test data relative to an injectable clock.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock pins the generator to a fixed date source, for deterministic
// tests.
func NewWithClock(clock func() time.Time) *Generator {
	return &Generator{now: clock}
}

// ValidInvoice builds an upload request that satisfies every backend rule
// for the given invoice type: E_FATURA carries a hash, E_ARSIV a
// tax-exclusive amount.
func (g *Generator) ValidInvoice(userEmail string, invoiceType model.InvoiceType) *model.UploadInvoiceRequest {
	req := &model.UploadInvoiceRequest{
		UserEmail:         userEmail,
		SupplierTaxNo:     randomSupplierTaxNo(),
		InvoiceAmount:     amount.Ptr(randomAmount()),
		RemainingAmount:   amount.Ptr(randomAmount()),
		CurrencyType:      "TL",
		InvoiceDate:       g.CurrentDate(),
		DueDate:           g.FutureWorkingDate(60),
		AdditionalDueDate: g.FutureWorkingDate(60),
		InvoiceNo:         "TEST" + strconv.FormatInt(g.now().UnixMilli(), 10),
		InvoiceType:       invoiceType,
	}
	if invoiceType.RequiresHashCode() {
		req.HashCode = HashCode()
	}
	if invoiceType.RequiresTaxExclusiveAmount() {
		req.TaxExclusiveAmount = amount.Ptr(100)
	} else {
		req.TaxExclusiveAmount = amount.Ptr(0)
	}
	return req
}

// InvalidInvoice starts from a valid E_FATURA and breaks the named field.
func (g *Generator) InvalidInvoice(userEmail, invalidField string) *model.UploadInvoiceRequest {
	req := g.ValidInvoice(userEmail, model.EFatura)

	switch invalidField {
	case "emptyInvoiceNo":
		req.InvoiceNo = ""
	case "zeroAmount":
		req.InvoiceAmount = amount.Ptr(0)
	case "negativeAmount":
		req.InvoiceAmount = amount.Ptr(-100)
	case "emptySupplierTax":
		req.SupplierTaxNo = ""
	case "pastDueDate":
		req.DueDate = "2020-01-01"
	case "holidayDueDate":
		req.DueDate = "2025-12-25"
	case "eFaturaWithoutHashCode":
		req.InvoiceType = model.EFatura
		req.HashCode = ""
	case "eArsivWithoutTaxExclusive":
		req.InvoiceType = model.EArsiv
		req.TaxExclusiveAmount = amount.Ptr(0)
	}
	return req
}

// AuctionLine builds one auction invoice for the given package. The
// requested amount defaults to 95% of the invoice amount to stay under the
// financing cap, and order/item numbers are derived from the package digits
// so related lines stay traceable.
func (g *Generator) AuctionLine(packageNo, supplierTaxNo string, invoiceAmount float64, invoiceType model.InvoiceType) model.AuctionInvoice {
	inv := model.AuctionInvoice{
		CurrencyType:       "TL",
		DueDate:            g.now().AddDate(0, 0, 30).Format(dateLayout),
		ExtraInvoiceDueDay: 0,
		TaxExclusiveAmount: amount.Ptr(0),
		InvoiceAmount:      amount.Ptr(invoiceAmount),
		RequestedAmount:    amount.Ptr(invoiceAmount * 0.95),
		InvoiceDate:        g.now().AddDate(0, 0, -1).Format(dateLayout),
		InvoiceType:        invoiceType,
		InvoiceETTN:        "",
		InvoiceTypeCode:    "SATIS",
		PackageNo:          packageNo,
		SupplierTaxNo:      supplierTaxNo,
	}

	digits := onlyDigits(packageNo)
	if len(digits) >= 4 {
		inv.OrderNo = "1000" + digits[len(digits)-4:]
		start := len(digits) - 6
		if start < 0 {
			start = 0
		}
		inv.ItemNo = "200" + digits[start:]
	} else {
		ts := strconv.FormatInt(g.now().UnixMilli()%10000, 10)
		inv.OrderNo = "1000" + ts
		inv.ItemNo = "200" + ts
	}
	return inv
}

// UniqueInvoiceNo returns a millisecond-unique invoice number.
func (g *Generator) UniqueInvoiceNo() string {
	return "INV" + strconv.FormatInt(g.now().UnixMilli(), 10)
}

// ReferenceNo returns a fresh auction reference in the recommended format.
func ReferenceNo() string {
	return validate.ReferencePrefix + uuid.NewString()
}

// HashCode returns a 32-character document hash placeholder.
func HashCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:32]
}

func (g *Generator) CurrentDate() string {
	return g.now().Format(dateLayout)
}

// FutureWorkingDate returns today+daysFromNow pushed forward past weekends
// and fixed holidays.
func (g *Generator) FutureWorkingDate(daysFromNow int) string {
	d := g.now().AddDate(0, 0, daysFromNow)
	for isWeekendOrHoliday(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(dateLayout)
}

// CurrentDateTimeISO formats the current instant the way the history
// endpoint expects its date bounds.
func (g *Generator) CurrentDateTimeISO() string {
	return g.now().Format("2006-01-02T15:04:05.000-0700")
}

// TodayStart returns the beginning of the current day in the same format,
// used as the history lower bound for a wider search.
func (g *Generator) TodayStart() string {
	y, m, d := g.now().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, g.now().Location())
	return start.Format("2006-01-02T15:04:05.000-0700")
}

func isWeekendOrHoliday(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	if d.Month() == time.January && d.Day() == 1 {
		return true
	}
	if d.Month() == time.December && d.Day() == 25 {
		return true
	}
	return false
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func randomSupplierTaxNo() string {
	return supplierTaxNumbers[rand.Intn(len(supplierTaxNumbers))]
}

// randomAmount returns a value in [100, 10100) rounded to cents.
func randomAmount() float64 {
	v := rand.Float64()*10000 + 100
	return float64(int64(v*100+0.5)) / 100
}
