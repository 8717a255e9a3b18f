// Package status turns raw auction-detail responses into structured
// snapshots. The backend nests the authoritative copy of most fields under
// result.auction when it feels like it, so resolution always prefers the
// nested object, then the result object, then the root.
package status

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab/fields"
)

// InferredUploaded is the status token assumed when the envelope reports
// success but carries no explicit status anywhere. The backend omits the
// status on first-time creation; whether that omission is contractual or a
// bug is unconfirmed, so the inference is named rather than silent.
const InferredUploaded = "UPLOADED"

var (
	statusFields    = []string{"status", "auctionStatus", "state"}
	referenceFields = []string{"referenceNo", "reference"}
	messageFields   = []string{"message", "description"}
	errorFields     = []string{"error", "message", "errorMessage"}
)

// Snapshot is a read-only view of one detail response. The raw body is kept
// for diagnostics.
type Snapshot struct {
	Status          string
	ReferenceNo     string
	Message         string
	ErrorMessage    string
	RejectionReason string
	RejectDate      string
	TotalAmount     *float64
	InvoiceCount    *int
	Success         bool
	HTTPStatusCode  int
	RawResponse     string
}

func (s *Snapshot) IsRejected() bool {
	return strings.EqualFold(s.Status, "REJECTED")
}

func (s *Snapshot) IsUploaded() bool {
	return strings.EqualFold(s.Status, "UPLOADED") || strings.EqualFold(s.Status, "DRAFT")
}

func (s *Snapshot) HasRejectionInfo() bool {
	return strings.TrimSpace(s.RejectionReason) != ""
}

// Resolve builds a snapshot from a raw response body. It never fails: an
// unparseable body yields an error snapshot, since a malformed or statusless
// response is expected backend behavior, not an exception.
func Resolve(body string, httpStatus int) *Snapshot {
	snap := &Snapshot{HTTPStatusCode: httpStatus, RawResponse: body}

	doc, err := fields.Parse([]byte(body))
	if err != nil {
		log.Debugf("unparseable detail response: %v", err)
		snap.ErrorMessage = "unparseable response: " + err.Error()
		return snap
	}

	snap.Success = doc.Bool("success")
	result := doc.Child("result")

	if !snap.Success || result == nil {
		snap.ErrorMessage, _ = doc.String(errorFields...)
		return snap
	}

	auction := result.Child("auction")

	snap.Status = firstString(auction, result, statusFields...)
	snap.ReferenceNo = firstString(auction, result, referenceFields...)
	snap.Message, _ = result.String(messageFields...)

	if v, ok := auction.Float("totalPayableAmount"); ok {
		snap.TotalAmount = &v
	} else if v, ok := result.Float("totalAmount"); ok {
		snap.TotalAmount = &v
	}

	if n, ok := auction.Int("totalFactoringCount"); ok {
		snap.InvoiceCount = &n
	} else if n, ok := result.Int("invoiceCount"); ok {
		snap.InvoiceCount = &n
	}

	snap.RejectionReason, _ = result.String("rejectionReason")
	snap.RejectDate, _ = result.String("rejectDate")

	return snap
}

// Token is the coarse resolver for callers that only need a bare status
// string. It applies the same nested-first precedence and falls back to the
// InferredUploaded heuristic when the envelope is successful but statusless.
// A failed envelope yields "", never a fabricated status.
func Token(body string) string {
	doc, err := fields.Parse([]byte(body))
	if err != nil {
		log.Debugf("unparseable response, no status token: %v", err)
		return ""
	}
	if !doc.Bool("success") {
		return ""
	}

	result := doc.Child("result")
	for _, node := range []fields.Document{result.Child("auction"), result, doc} {
		if s, ok := node.String(statusFields...); ok {
			return s
		}
	}

	log.Debug("no explicit status found, inferring UPLOADED from successful response")
	return InferredUploaded
}

func firstString(primary, fallback fields.Document, names ...string) string {
	if s, ok := primary.String(names...); ok {
		return s
	}
	s, _ := fallback.String(names...)
	return s
}
