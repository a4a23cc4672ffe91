package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"chillout-web/internal/domain"
)

// ErrPaymentInit indicates the gateway declined to issue a hosted payment
// URL even though the backend answered 2xx.
var ErrPaymentInit = errors.New("payment initialization failed")

// Client talks JSON over HTTP to the external restaurant backend. It does
// not retry and applies no timeout of its own; cancellation comes from the
// caller's context.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

// New builds a Client for the given base URL.
func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		logger:  logger,
	}
}

// FetchMenu lists menu items, optionally filtered by category and a
// search term. Both filters are passed through to the backend untouched.
func (c *Client) FetchMenu(ctx context.Context, category, search string) ([]domain.MenuItem, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}

	var items []domain.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", query, nil, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
}

// FetchCart reads the remote cart for a session. A response without an
// items field counts as an empty cart.
func (c *Client) FetchCart(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodGet, "/cart/"+url.PathEscape(sessionID), nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		return []domain.CartItem{}, nil
	}
	return resp.Items, nil
}

// AddCartItem adds a menu item to the session's remote cart. The backend
// merges quantities when the item is already present; the client does not
// control that.
func (c *Client) AddCartItem(ctx context.Context, sessionID, menuItemID string, quantity int) error {
	body := map[string]interface{}{
		"userId":     sessionID,
		"menuItemId": menuItemID,
		"quantity":   quantity,
	}
	return c.do(ctx, http.MethodPost, "/cart/add", nil, body, nil, nil)
}

// RemoveCartItem removes a menu item from the session's remote cart.
func (c *Client) RemoveCartItem(ctx context.Context, sessionID, menuItemID string) error {
	body := map[string]interface{}{
		"userId":     sessionID,
		"menuItemId": menuItemID,
	}
	return c.do(ctx, http.MethodPost, "/cart/remove", nil, body, nil, nil)
}

// CreateOrderInput is the order-creation payload. The cart contents are
// implied by the session id; the backend reads them server-side.
type CreateOrderInput struct {
	SessionID       string
	CustomerDetails domain.CustomerDetails
	PaymentMethod   domain.PaymentMethod
	IdempotencyKey  string
}

// CreateOrderResult is the backend's order-creation response.
type CreateOrderResult struct {
	OrderID     string `json:"orderId"`
	TotalAmount int64  `json:"totalAmount"`
}

// CreateOrder creates an order from the session's cart, customer details
// and chosen payment method.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderResult, error) {
	body := map[string]interface{}{
		"userId":          in.SessionID,
		"customerDetails": in.CustomerDetails,
		"paymentMethod":   string(in.PaymentMethod),
	}
	if in.IdempotencyKey != "" {
		body["idempotencyKey"] = in.IdempotencyKey
	}

	var result CreateOrderResult
	if err := c.do(ctx, http.MethodPost, "/orders", nil, body, nil, &result); err != nil {
		return CreateOrderResult{}, err
	}
	return result, nil
}

type paymentInitResponse struct {
	Status bool `json:"status"`
	Data   struct {
		AuthorizationURL string `json:"authorization_url"`
	} `json:"data"`
}

// InitializePayment requests a hosted payment page URL for an order.
// Returns ErrPaymentInit when the gateway answers without one.
func (c *Client) InitializePayment(ctx context.Context, orderID, email string, amount int64) (string, error) {
	body := map[string]interface{}{
		"orderId": orderID,
		"email":   email,
		"amount":  amount,
	}

	var resp paymentInitResponse
	if err := c.do(ctx, http.MethodPost, "/payment/initialize", nil, body, nil, &resp); err != nil {
		return "", err
	}
	if !resp.Status || resp.Data.AuthorizationURL == "" {
		return "", ErrPaymentInit
	}
	return resp.Data.AuthorizationURL, nil
}

// ConfirmPayment signals that the customer has sent a manual transfer for
// the order.
func (c *Client) ConfirmPayment(ctx context.Context, orderID string) error {
	body := map[string]interface{}{"orderId": orderID}
	return c.do(ctx, http.MethodPost, "/orders/confirm-payment", nil, body, nil, nil)
}

type remoteMessage struct {
	Message string `json:"message"`
}

// do performs one request/response round trip. Non-2xx responses become a
// domain.RemoteError carrying the backend's message verbatim.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, headers map[string]string, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Printf("backend %s %s: %v", method, path, err)
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg remoteMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		c.logger.Printf("backend %s %s: status %d message %q", method, path, resp.StatusCode, msg.Message)
		return &domain.RemoteError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
