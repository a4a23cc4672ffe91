package backend

import (
	"context"
	"net/http"
	"net/url"

	"chillout-web/internal/domain"
)

// adminHeader is the shared-secret header the backend compares per request.
const adminHeader = "x-admin-password"

// Login checks an admin password against the backend. A false result with
// a nil error means the password was simply wrong.
func (c *Client) Login(ctx context.Context, password string) (bool, error) {
	body := map[string]interface{}{"password": password}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, body, nil, &resp); err != nil {
		if re, ok := domain.AsRemoteError(err); ok && re.Status == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	return resp.Success, nil
}

// FetchOrders lists all orders for the admin dashboard.
func (c *Client) FetchOrders(ctx context.Context, password string) ([]domain.OrderSummary, error) {
	var orders []domain.OrderSummary
	err := c.do(ctx, http.MethodGet, "/orders", nil, nil, c.adminHeaders(password), &orders)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new lifecycle status.
func (c *Client) UpdateOrderStatus(ctx context.Context, password, orderID, status string) error {
	body := map[string]interface{}{"status": status}
	path := "/orders/" + url.PathEscape(orderID) + "/status"
	return c.do(ctx, http.MethodPut, path, nil, body, c.adminHeaders(password), nil)
}

// AdminConfirmPayment marks a transfer order as paid from the dashboard.
func (c *Client) AdminConfirmPayment(ctx context.Context, password, orderID string) error {
	body := map[string]interface{}{"transferDetails": map[string]interface{}{}}
	path := "/orders/" + url.PathEscape(orderID) + "/confirm-payment"
	return c.do(ctx, http.MethodPost, path, nil, body, c.adminHeaders(password), nil)
}

// MenuItemInput carries the writable fields of a menu item.
type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// CreateMenuItem adds a new item to the catalog.
func (c *Client) CreateMenuItem(ctx context.Context, password string, in MenuItemInput) error {
	return c.do(ctx, http.MethodPost, "/menu", nil, in, c.adminHeaders(password), nil)
}

// UpdateMenuItem replaces the writable fields of an existing item.
func (c *Client) UpdateMenuItem(ctx context.Context, password, itemID string, in MenuItemInput) error {
	return c.do(ctx, http.MethodPut, "/menu/"+url.PathEscape(itemID), nil, in, c.adminHeaders(password), nil)
}

// DeleteMenuItem removes an item from the catalog.
func (c *Client) DeleteMenuItem(ctx context.Context, password, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(itemID), nil, nil, c.adminHeaders(password), nil)
}

func (c *Client) adminHeaders(password string) map[string]string {
	return map[string]string{adminHeader: password}
}
