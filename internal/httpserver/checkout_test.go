package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"chillout-web/internal/checkout"
	"chillout-web/internal/domain"
)

const checkoutBody = `{
	"customerDetails": {"name":"Ada","phone":"08012345678","address":"12 Marina Road","email":"ada@example.com"},
	"paymentMethod": "transfer"
}`

func TestSubmitCheckoutInvalidFields(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.outcome = checkout.Outcome{
		Kind:        checkout.OutcomeInvalid,
		FieldErrors: map[string]string{"phone": "Enter a valid phone number"},
	}

	rec := doRequest(router, http.MethodPost, "/api/checkout", checkoutBody)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["phone"] != "Enter a valid phone number" {
		t.Fatalf("unexpected errors %v", resp.Errors)
	}
}

func TestSubmitCheckoutTransfer(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.outcome = checkout.Outcome{
		Kind:     checkout.OutcomeTransfer,
		Snapshot: domain.OrderSnapshot{OrderID: "O1", TotalAmount: 5000},
	}

	rec := doRequest(router, http.MethodPost, "/api/checkout", checkoutBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["next"] != "transfer" || resp["confirmation"] != "/confirmation" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestSubmitCheckoutGatewayRedirect(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.outcome = checkout.Outcome{
		Kind:        checkout.OutcomeRedirect,
		RedirectURL: "https://pay.example/x",
	}

	rec := doRequest(router, http.MethodPost, "/api/checkout", checkoutBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["next"] != "redirect" || resp["url"] != "https://pay.example/x" {
		t.Fatalf("unexpected response %v", resp)
	}
}

func TestSubmitCheckoutRemoteErrorPassthrough(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.submitErr = &domain.RemoteError{Status: http.StatusBadRequest, Message: "Cart is empty"}

	rec := doRequest(router, http.MethodPost, "/api/checkout", checkoutBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected backend status passthrough, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["message"] != "Cart is empty" {
		t.Fatalf("expected verbatim backend message, got %v", resp)
	}
}

func TestSubmitCheckoutInFlight(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.submitErr = domain.ErrSubmitInFlight

	rec := doRequest(router, http.MethodPost, "/api/checkout", checkoutBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestSubmitCheckoutUnknownMethod(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"customerDetails":{"name":"Ada"},"paymentMethod":"cash"}`
	rec := doRequest(router, http.MethodPost, "/api/checkout", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestConfirmPaymentNavigatesToSuccess(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.confirmID = "O1"

	rec := doRequest(router, http.MethodPost, "/api/checkout/confirm-payment", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["next"] != "/order-success?orderId=O1" {
		t.Fatalf("unexpected next %q", resp["next"])
	}
}

func TestConfirmPaymentFailureKeepsStep(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.dispatcher.confirmErr = &domain.RemoteError{Status: http.StatusInternalServerError, Message: "try later"}

	rec := doRequest(router, http.MethodPost, "/api/checkout/confirm-payment", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
