package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"chillout-web/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, log.New(io.Discard, "", 0))
}

func TestFetchMenuQueryParams(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.MenuItem{{ID: "m1", Name: "Suya", Price: 1500, Category: "food"}})
	})

	items, err := client.FetchMenu(context.Background(), "food", "suya")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Suya" {
		t.Fatalf("unexpected items %+v", items)
	}
	if gotQuery != "category=food&search=suya" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestFetchCartUnwrapsItems(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart/guest_1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"c1","menuItem":{"id":"m1","price":2000},"quantity":3}]}`))
	})

	items, err := client.FetchCart(context.Background(), "guest_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 || items[0].MenuItem.Price != 2000 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestFetchCartMissingItemsField(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	items, err := client.FetchCart(context.Background(), "guest_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %#v", items)
	}
}

func TestAddCartItemBody(t *testing.T) {
	var got map[string]interface{}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cart/add" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	})

	if err := client.AddCartItem(context.Background(), "guest_1", "m1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["userId"] != "guest_1" || got["menuItemId"] != "m1" || got["quantity"] != float64(1) {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestNon2xxBecomesRemoteError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Item already in cart"}`))
	})

	err := client.AddCartItem(context.Background(), "guest_1", "m1", 1)
	re, ok := domain.AsRemoteError(err)
	if !ok {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.Status != http.StatusBadRequest || re.Message != "Item already in cart" {
		t.Fatalf("unexpected remote error %+v", re)
	}
}

func TestCreateOrderPayloadAndResult(t *testing.T) {
	var got map[string]interface{}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"orderId":"O1","totalAmount":5000}`))
	})

	result, err := client.CreateOrder(context.Background(), CreateOrderInput{
		SessionID:       "guest_1",
		CustomerDetails: domain.CustomerDetails{Name: "Ada", Phone: "08012345678", Address: "12 Marina Road", Email: "ada@example.com"},
		PaymentMethod:   domain.PaymentTransfer,
		IdempotencyKey:  "key-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OrderID != "O1" || result.TotalAmount != 5000 {
		t.Fatalf("unexpected result %+v", result)
	}
	if got["userId"] != "guest_1" || got["paymentMethod"] != "transfer" || got["idempotencyKey"] != "key-1" {
		t.Fatalf("unexpected body %v", got)
	}
	details, _ := got["customerDetails"].(map[string]interface{})
	if details["name"] != "Ada" {
		t.Fatalf("unexpected customer details %v", details)
	}
}

func TestInitializePayment(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":{"authorization_url":"https://pay.example/x"}}`))
	})

	url, err := client.InitializePayment(context.Background(), "O1", "ada@example.com", 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://pay.example/x" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestInitializePaymentDeclined(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":false}`))
	})

	_, err := client.InitializePayment(context.Background(), "O1", "ada@example.com", 5000)
	if !errors.Is(err, ErrPaymentInit) {
		t.Fatalf("expected ErrPaymentInit, got %v", err)
	}
}

func TestAdminCallsCarryPasswordHeader(t *testing.T) {
	var gotHeader, gotPath, gotMethod string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("x-admin-password")
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})

	if err := client.UpdateOrderStatus(context.Background(), "secret", "O1", "preparing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != "secret" || gotMethod != http.MethodPut || gotPath != "/orders/O1/status" {
		t.Fatalf("unexpected request %s %s header %q", gotMethod, gotPath, gotHeader)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})

	ok, err := client.Login(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected login rejection")
	}
}

func TestLoginUnauthorizedStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid password"}`))
	})

	ok, err := client.Login(context.Background(), "nope")
	if err != nil {
		t.Fatalf("expected wrong password to be a clean rejection, got %v", err)
	}
	if ok {
		t.Fatalf("expected login rejection")
	}
}
