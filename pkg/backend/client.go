package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sefazor/pricing-web/internal/models"
	"go.uber.org/zap"
)

// Scope is the caller context for authenticated calls: the bearer token and
// the company the categories belong to.
type Scope struct {
	Token   string
	Company string
}

// companySegment keeps the historical behaviour of interpolating a missing
// company as the literal "null".
func (s Scope) companySegment() string {
	if s.Company == "" {
		return "null"
	}
	return url.PathEscape(s.Company)
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	logger = logger.Named("backend")
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetLogger(logger.Sugar()),
		logger: logger,
	}
}

// ListCategories returns the category listing of the scope's company as
// the backend sent it. An empty body reads as null; a body that is not JSON
// is handed back as a JSON string.
func (c *Client) ListCategories(ctx context.Context, scope Scope) (json.RawMessage, error) {
	const op = "list_categories"

	resp, err := c.request(ctx, scope.Token).
		Get("/api/category/company/" + scope.companySegment())
	if err != nil {
		return nil, c.fail(op, MsgFetchCategory, 0, KindTransport, err)
	}
	if !resp.IsSuccess() {
		return nil, c.statusError(op, MsgFetchCategory, resp)
	}

	return rawBody(resp.Body()), nil
}

// DeleteCategory removes a category/product by id.
func (c *Client) DeleteCategory(ctx context.Context, scope Scope, productID string) error {
	const op = "delete_category"

	resp, err := c.request(ctx, scope.Token).
		Delete("/api/category/" + url.PathEscape(productID))
	if err != nil {
		return c.fail(op, MsgRemoveProduct, 0, KindTransport, err)
	}
	if !resp.IsSuccess() {
		return c.statusError(op, MsgRemoveProduct, resp)
	}
	return nil
}

// CreateCheckoutSession asks the backend for a payment session. The call is
// not authenticated.
func (c *Client) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	const op = "create_checkout_session"

	var session models.CheckoutSession
	resp, err := c.request(ctx, "").
		ForceContentType("application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/create-checkout-session")
	if err != nil {
		// no raw response means the request never got an answer
		if resp == nil || resp.RawResponse == nil {
			return nil, c.fail(op, MsgCreateCheckout, 0, KindTransport, err)
		}
		if resp.IsSuccess() {
			return nil, c.fail(op, MsgCreateCheckout, resp.StatusCode(), KindUnknown, fmt.Errorf("failed to decode session: %w", err))
		}
	}
	if !resp.IsSuccess() {
		return nil, c.statusError(op, MsgCreateCheckout, resp)
	}
	if session.ID == "" {
		return nil, c.fail(op, MsgCreateCheckout, resp.StatusCode(), KindUnknown, fmt.Errorf("session id is empty"))
	}

	return &session, nil
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *Client) statusError(op, msg string, resp *resty.Response) error {
	status := resp.StatusCode()
	cause := fmt.Errorf("backend responded %d: %s", status, truncate(resp.Body(), 512))
	return c.fail(op, msg, status, kindForStatus(status), cause)
}

func (c *Client) fail(op, msg string, status int, kind ErrorKind, cause error) error {
	c.logger.Error(msg,
		zap.String("op", op),
		zap.String("kind", kind.String()),
		zap.Int("status", status),
		zap.Error(cause),
	)
	return &Error{
		Kind:       kind,
		Op:         op,
		Message:    msg,
		StatusCode: status,
		Err:        cause,
	}
}

func rawBody(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
		return json.RawMessage("null")
	case json.Valid(trimmed):
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
