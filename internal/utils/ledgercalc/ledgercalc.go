package ledgercalc

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/hamidtraders/invoice_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InitialInvoiceNumber is the lowest invoice number ever issued; the
// next-number computation never goes below it.
const InitialInvoiceNumber int64 = 30

// NumberValue returns the ordering value of an invoice number: its integer
// value when the string is all digits, otherwise 0. Non-numeric numbers fall
// back to insertion order via the invoice id tie-break.
func NumberValue(invoiceNumber string) int64 {
	v, ok := NumericValue(invoiceNumber)
	if !ok {
		return 0
	}
	return v
}

// NumericValue parses an all-digit invoice number. The second return is false
// for anything else; such numbers are excluded from the MAX-based next-number
// computation.
func NumericValue(invoiceNumber string) (int64, bool) {
	if invoiceNumber == "" {
		return 0, false
	}
	for _, r := range invoiceNumber {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(invoiceNumber, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NextInvoiceNumber returns max(InitialInvoiceNumber, maxNumeric+1), where
// maxNumeric is the highest all-digit invoice number currently issued (0 when
// none exist).
func NextInvoiceNumber(maxNumeric int64) string {
	next := maxNumeric + 1
	if next < InitialInvoiceNumber {
		next = InitialInvoiceNumber
	}
	return strconv.FormatInt(next, 10)
}

// SortChronological orders invoices by (date, number value, id) ascending.
// The id tie-break keeps same-date invoices with non-numeric numbers in
// insertion order.
func SortChronological(invoices []domain.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		di, dj := dateOnly(invoices[i].InvoiceDate), dateOnly(invoices[j].InvoiceDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		ni, nj := NumberValue(invoices[i].InvoiceNumber), NumberValue(invoices[j].InvoiceNumber)
		if ni != nj {
			return ni < nj
		}
		return invoices[i].InvoiceID < invoices[j].InvoiceID
	})
}

// Cutoff is a position in a party's invoice chain: everything strictly after
// it is rebuilt by RecalculateForward, everything at or before it feeds the
// starting balance.
type Cutoff struct {
	Date        time.Time
	NumberValue int64
}

// CutoffAt positions the cutoff at a specific invoice's (date, number).
func CutoffAt(date time.Time, invoiceNumber string) Cutoff {
	return Cutoff{Date: dateOnly(date), NumberValue: NumberValue(invoiceNumber)}
}

// CutoffStartOfDay positions the cutoff before every invoice of the given
// date, so a sweep rebuilds all invoices dated on or after it. Used after a
// payment deletion, where no invoice-number anchor exists.
func CutoffStartOfDay(date time.Time) Cutoff {
	return Cutoff{Date: dateOnly(date), NumberValue: math.MinInt64}
}

// Before reports whether the invoice sits strictly after the cutoff in the
// chain ordering.
func (c Cutoff) Before(inv domain.Invoice) bool {
	d := dateOnly(inv.InvoiceDate)
	if !d.Equal(c.Date) {
		return d.After(c.Date)
	}
	return NumberValue(inv.InvoiceNumber) > c.NumberValue
}

// BalanceUpdate carries the rebuilt balance pair for one invoice. The sweep
// is pure; persisting the updates is the caller's transaction.
type BalanceUpdate struct {
	InvoiceID       int64
	PreviousBalance decimal.Decimal
	GrandTotal      decimal.Decimal
}

// PaymentsThrough sums payment amounts dated on or before the given date.
// Payments dated exactly on a cutoff date count as already applied; there is
// no payment-vs-invoice ordering within a day.
func PaymentsThrough(payments []domain.Payment, date time.Time) decimal.Decimal {
	d := dateOnly(date)
	sum := decimal.Zero
	for _, p := range payments {
		if !dateOnly(p.PaymentDate).After(d) {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// BalanceThrough computes the party balance after every event at or before
// the cutoff: opening balance, plus the totals of invoices not after the
// cutoff, minus payments dated up to the cutoff date. For an updated invoice
// the at-cutoff row itself contributes its new total, which is what lets the
// sweep hand the change on to its successors; for a deleted invoice the row
// is already gone and the at-cutoff term is empty.
func BalanceThrough(opening decimal.Decimal, invoices []domain.Invoice, payments []domain.Payment, cut Cutoff) decimal.Decimal {
	running := opening.Sub(PaymentsThrough(payments, cut.Date))
	for _, inv := range invoices {
		if !cut.Before(inv) {
			running = running.Add(inv.TotalAmount)
		}
	}
	return running
}

// RecalculateForward rebuilds previous_balance and grand_total for every
// invoice strictly after the cutoff, in chain order, starting from
// BalanceThrough. A single pass fully reconstructs the chain.
func RecalculateForward(opening decimal.Decimal, invoices []domain.Invoice, payments []domain.Payment, cut Cutoff) []BalanceUpdate {
	running := BalanceThrough(opening, invoices, payments, cut)

	sorted := make([]domain.Invoice, len(invoices))
	copy(sorted, invoices)
	SortChronological(sorted)

	var updates []BalanceUpdate
	for _, inv := range sorted {
		if !cut.Before(inv) {
			continue
		}
		grand := running.Add(inv.TotalAmount)
		updates = append(updates, BalanceUpdate{
			InvoiceID:       inv.InvoiceID,
			PreviousBalance: running,
			GrandTotal:      grand,
		})
		running = grand
	}
	return updates
}

// CurrentBalance is the party's live balance: opening + invoice totals −
// payment totals, rounded to 2 decimal places.
func CurrentBalance(opening, invoiceTotal, paymentTotal decimal.Decimal) decimal.Decimal {
	return opening.Add(invoiceTotal).Sub(paymentTotal).Round(2)
}

// ItemsTotal sums caller-supplied item amounts and rounds to 2 decimal
// places. Amounts are trusted as sent; qty times price is not recomputed.
func ItemsTotal(items []domain.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Amount)
	}
	return sum.Round(2)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
