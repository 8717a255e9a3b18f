// Package faturalab is a client for the Faturalab buyer-integration API:
// session-header authentication, invoice upload/history/delete, and the
// auction (invoice financing) lifecycle.
package faturalab

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab/api"
	"github.com/faturalab/go-faturalab-client/faturalab/config"
	"github.com/faturalab/go-faturalab-client/faturalab/model"
	"github.com/faturalab/go-faturalab-client/faturalab/poll"
	"github.com/faturalab/go-faturalab-client/faturalab/status"
	"github.com/faturalab/go-faturalab-client/faturalab/validate"
)

var logger = logrus.WithField("component", "faturalab")

// Client drives the integration API for one buyer identity. It is not safe
// for concurrent use: Authenticate mutates the shared session id and every
// call remembers the last response. Callers needing concurrency hold one
// Client per logical session.
type Client struct {
	env     *config.Environment
	session api.SessionService
	invoice api.InvoiceService
	auction api.AuctionService
	last    *resty.Response
}

func NewClient(env *config.Environment) *Client {
	transport := api.New(env)
	return &Client{
		env:     env,
		session: api.NewSessionService(transport, env),
		invoice: api.NewInvoiceService(transport),
		auction: api.NewAuctionService(transport),
	}
}

// Authenticate opens a session. On success the session id is stored on the
// environment and attached to every subsequent call.
func (c *Client) Authenticate() (*resty.Response, error) {
	resp, err := c.session.Authenticate()
	return c.remember(resp), err
}

func (c *Client) UploadInvoice(req *model.UploadInvoiceRequest) (*resty.Response, error) {
	resp, err := c.invoice.Upload(req)
	return c.remember(resp), err
}

func (c *Client) GetInvoiceHistory(req *model.InvoiceHistoryRequest) (*resty.Response, error) {
	resp, err := c.invoice.History(req)
	return c.remember(resp), err
}

func (c *Client) DeleteInvoice(req *model.DeleteInvoiceRequest) (*resty.Response, error) {
	resp, err := c.invoice.Delete(req)
	return c.remember(resp), err
}

func (c *Client) UploadAuction(req *model.UploadAuctionRequest) (*resty.Response, error) {
	resp, err := c.auction.Upload(req)
	return c.remember(resp), err
}

func (c *Client) GetAuctionDetail(req *model.AuctionDetailRequest) (*resty.Response, error) {
	resp, err := c.auction.Detail(req)
	return c.remember(resp), err
}

func (c *Client) RejectAuction(req *model.RejectAuctionRequest) (*resty.Response, error) {
	resp, err := c.auction.Reject(req)
	return c.remember(resp), err
}

func (c *Client) LastResponse() *resty.Response {
	return c.last
}

func (c *Client) LastStatusCode() int {
	if c.last == nil {
		return -1
	}
	return c.last.StatusCode()
}

func (c *Client) SessionID() string {
	return c.env.SessionID
}

// IsResponseSuccessful checks the last envelope's success flag. HTTP 200
// with success=false is an expected negative-path outcome, not an error.
func (c *Client) IsResponseSuccessful() bool {
	if c.last == nil {
		return false
	}
	var envelope model.ApiResponse
	if err := json.Unmarshal(c.last.Body(), &envelope); err != nil {
		logger.Debugf("can't parse envelope: %v", err)
		return false
	}
	return envelope.Success
}

// IsInvoiceInHistory reports whether the last response body mentions the
// invoice number anywhere.
func (c *Client) IsInvoiceInHistory(invoiceNo string) bool {
	if c.last == nil {
		return false
	}
	return strings.Contains(c.last.String(), invoiceNo)
}

// AuctionStatus resolves a bare status token from the last response, with
// the documented UPLOADED inference for statusless successful envelopes.
func (c *Client) AuctionStatus() string {
	if c.last == nil {
		logger.Warn("no response available for status extraction")
		return ""
	}
	return status.Token(c.last.String())
}

// DetailedAuctionStatus resolves a full snapshot from the last response, or
// nil when nothing has been called yet.
func (c *Client) DetailedAuctionStatus() *status.Snapshot {
	if c.last == nil {
		return nil
	}
	return status.Resolve(c.last.String(), c.last.StatusCode())
}

// ValidateAuctionAmounts reconciles an auction payload without touching the
// network.
func (c *Client) ValidateAuctionAmounts(req *model.UploadAuctionRequest) *model.ValidationResult {
	return validate.Auction(req)
}

// AwaitInvoiceInHistory polls the history endpoint until the invoice shows
// up, tolerating the backend's indexing lag after an upload.
func (c *Client) AwaitInvoiceInHistory(ctx context.Context, policy poll.Policy, req *model.InvoiceHistoryRequest, invoiceNo string) (poll.Result, error) {
	return policy.AwaitVisibility(ctx, c.historyQuery(req), poll.Contains(invoiceNo))
}

// AwaitInvoiceDeleted polls the history endpoint until the invoice is gone
// or marked with a terminal deleted status.
func (c *Client) AwaitInvoiceDeleted(ctx context.Context, policy poll.Policy, req *model.InvoiceHistoryRequest, invoiceNo string) (poll.Result, error) {
	return policy.AwaitVisibility(ctx, c.historyQuery(req), poll.Deleted(invoiceNo))
}

func (c *Client) historyQuery(req *model.InvoiceHistoryRequest) poll.QueryFunc {
	return func(ctx context.Context) (string, error) {
		resp, err := c.GetInvoiceHistory(req)
		if err != nil {
			return "", err
		}
		return resp.String(), nil
	}
}

func (c *Client) remember(resp *resty.Response) *resty.Response {
	if resp != nil {
		c.last = resp
	}
	return resp
}
