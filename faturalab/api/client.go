package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/faturalab/go-faturalab-client/faturalab/config"
	"github.com/faturalab/go-faturalab-client/faturalab/util"
)

// BasePath is the fixed buyer-integration prefix for every operation.
const BasePath = "/app/api/integration/buyer/v0"

// HeaderParams is the custom authentication header. Its value is a JSON
// object carrying the API key and, once authenticated, the session id.
const HeaderParams = "FLINTEGRATIONHEADERPARAMS"

// Client posts one operation payload as a single named form field. The
// backend expects form encoding even though every payload is JSON.
type Client interface {
	PostForm(endpoint, paramName string, payload any) (*resty.Response, error)
}

type client struct {
	rest *resty.Client
	env  *config.Environment
}

func New(env *config.Environment) Client {
	rest := resty.New().SetBaseURL(env.Host + BasePath)
	return &client{rest: rest, env: env}
}

func (c *client) PostForm(endpoint, paramName string, payload any) (*resty.Response, error) {

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", paramName)
	}

	header, err := c.headerParams()
	if err != nil {
		return nil, err
	}

	r := c.rest.R()
	if util.HTTPTraceEnabled() {
		r.EnableTrace()
	}

	// The form body is encoded by hand: resty's form-data middleware would
	// replace the Content-Type and lose the charset the backend insists on.
	resp, err := r.
		SetHeader("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8").
		SetHeader("Accept", "application/json").
		SetHeader(HeaderParams, header).
		SetBody(url.Values{paramName: {string(body)}}.Encode()).
		Post(endpoint)

	if err != nil {
		re := &RequestError{Err: err}
		if resp != nil {
			re.StatusCode = resp.StatusCode()
			re.Body = resp.String()
			if re.Body != "" {
				var details map[string]any
				_ = json.Unmarshal([]byte(re.Body), &details)
				re.ErrorDetails = details
			}
		}
		return nil, re
	}

	printTraceInfo(endpoint, resp)
	return resp, nil
}

// headerParams serializes the header blob fresh on every call, since the
// session id changes after authentication.
func (c *client) headerParams() (string, error) {
	params := map[string]string{"apiKey": c.env.APIKey}
	if c.env.SessionID != "" {
		params["sessionId"] = c.env.SessionID
	}
	b, err := json.Marshal(params)
	if err != nil {
		return "", errors.Wrap(err, "encode header params")
	}
	return string(b), nil
}

func printTraceInfo(endpoint string, resp *resty.Response) {

	if !util.DebugEnabled() {
		return
	}

	fmt.Println("Response Info:")
	fmt.Println("  Endpoint   :", endpoint)
	fmt.Println("  Status Code:", resp.StatusCode())
	fmt.Println("  Status     :", resp.Status())
	fmt.Println("  Time       :", resp.Time())
	fmt.Println("  Received At:", resp.ReceivedAt())
	fmt.Println("  Body       :\n", resp)
	fmt.Println()
}
