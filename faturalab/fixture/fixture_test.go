package fixture

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/faturalab/go-faturalab-client/faturalab/model"
	"github.com/faturalab/go-faturalab-client/faturalab/validate"
)

// Monday 2026-08-31 10:00 UTC
func fixedClock() time.Time {
	return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
}

func TestValidInvoice_EFatura(t *testing.T) {

	g := NewWithClock(fixedClock)
	req := g.ValidInvoice("buyer@example.com", model.EFatura)

	assert.Equal(t, "buyer@example.com", req.UserEmail)
	assert.Equal(t, model.EFatura, req.InvoiceType)
	assert.Len(t, req.HashCode, 32)
	assert.Equal(t, 0.0, req.TaxExclusiveAmount.Float())
	assert.Equal(t, "TL", req.CurrencyType)
	assert.Equal(t, "2026-08-31", req.InvoiceDate)
	assert.True(t, strings.HasPrefix(req.InvoiceNo, "TEST"))
	assert.Greater(t, req.InvoiceAmount.Float(), 0.0)
	assert.NotEmpty(t, req.SupplierTaxNo)
}

func TestValidInvoice_EArsiv(t *testing.T) {

	g := NewWithClock(fixedClock)
	req := g.ValidInvoice("buyer@example.com", model.EArsiv)

	assert.Empty(t, req.HashCode)
	assert.Equal(t, 100.0, req.TaxExclusiveAmount.Float())
}

func TestInvalidInvoice(t *testing.T) {

	g := NewWithClock(fixedClock)

	assert.Empty(t, g.InvalidInvoice("u@e.com", "emptyInvoiceNo").InvoiceNo)
	assert.Equal(t, 0.0, g.InvalidInvoice("u@e.com", "zeroAmount").InvoiceAmount.Float())
	assert.Equal(t, -100.0, g.InvalidInvoice("u@e.com", "negativeAmount").InvoiceAmount.Float())
	assert.Empty(t, g.InvalidInvoice("u@e.com", "emptySupplierTax").SupplierTaxNo)
	assert.Equal(t, "2020-01-01", g.InvalidInvoice("u@e.com", "pastDueDate").DueDate)
	assert.Equal(t, "2025-12-25", g.InvalidInvoice("u@e.com", "holidayDueDate").DueDate)
	assert.Empty(t, g.InvalidInvoice("u@e.com", "eFaturaWithoutHashCode").HashCode)

	broken := g.InvalidInvoice("u@e.com", "eArsivWithoutTaxExclusive")
	assert.Equal(t, model.EArsiv, broken.InvoiceType)
	assert.Equal(t, 0.0, broken.TaxExclusiveAmount.Float())
}

func TestFutureWorkingDate_SkipsWeekend(t *testing.T) {

	// Friday + 1 lands on Saturday, must roll to Monday
	friday := func() time.Time {
		return time.Date(2026, time.September, 4, 10, 0, 0, 0, time.UTC)
	}
	g := NewWithClock(friday)

	assert.Equal(t, "2026-09-07", g.FutureWorkingDate(1))
}

func TestFutureWorkingDate_SkipsHoliday(t *testing.T) {

	// 2026-12-25 is a Friday, next working day is Monday the 28th
	g := NewWithClock(func() time.Time {
		return time.Date(2026, time.December, 24, 10, 0, 0, 0, time.UTC)
	})

	assert.Equal(t, "2026-12-28", g.FutureWorkingDate(1))
}

func TestAuctionLine(t *testing.T) {

	g := NewWithClock(fixedClock)
	line := g.AuctionLine("PKG-20260831-001234", "1234567890", 1000, model.EFatura)

	assert.Equal(t, 1000.0, line.InvoiceAmount.Float())
	assert.Equal(t, 950.0, line.RequestedAmount.Float())
	assert.Equal(t, "2026-09-30", line.DueDate)
	assert.Equal(t, "2026-08-30", line.InvoiceDate)
	assert.Equal(t, "SATIS", line.InvoiceTypeCode)
	assert.Equal(t, "TL", line.CurrencyType)
	assert.Equal(t, "PKG-20260831-001234", line.PackageNo)
	assert.Equal(t, "1234567890", line.SupplierTaxNo)

	// order/item numbers derive from the trailing package digits
	assert.Equal(t, "10001234", line.OrderNo)
	assert.Equal(t, "200001234", line.ItemNo)
}

func TestAuctionLine_ShortPackageNo(t *testing.T) {

	g := NewWithClock(fixedClock)
	line := g.AuctionLine("X1", "1234567890", 500, model.Paper)

	assert.True(t, strings.HasPrefix(line.OrderNo, "1000"))
	assert.True(t, strings.HasPrefix(line.ItemNo, "200"))
	assert.Equal(t, line.OrderNo[4:], line.ItemNo[3:], "both derive from the same timestamp")
}

func TestReferenceNo(t *testing.T) {

	ref := ReferenceNo()
	assert.True(t, strings.HasPrefix(ref, validate.ReferencePrefix))
	assert.Len(t, ref, len(validate.ReferencePrefix)+36)
	assert.NotEqual(t, ref, ReferenceNo())
}

func TestHashCode(t *testing.T) {

	h := HashCode()
	assert.Len(t, h, 32)
	assert.NotContains(t, h, "-")
	assert.NotEqual(t, h, HashCode())
}

func TestUniqueInvoiceNo(t *testing.T) {

	g := NewWithClock(fixedClock)
	assert.Equal(t, "INV1788170400000", g.UniqueInvoiceNo())
}

func TestTodayStart(t *testing.T) {

	g := NewWithClock(fixedClock)
	assert.Equal(t, "2026-08-31T00:00:00.000+0000", g.TodayStart())
	assert.Equal(t, "2026-08-31T10:00:00.000+0000", g.CurrentDateTimeISO())
}
