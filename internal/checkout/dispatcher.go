package checkout

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"chillout-web/internal/backend"
	"chillout-web/internal/domain"
)

// State is the checkout flow position for one session.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateRedirectingToGateway
	StateAwaitingTransferConfirmation
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateRedirectingToGateway:
		return "redirecting_to_gateway"
	case StateAwaitingTransferConfirmation:
		return "awaiting_transfer_confirmation"
	case StateDone:
		return "done"
	}
	return "unknown"
}

type orderClient interface {
	CreateOrder(ctx context.Context, in backend.CreateOrderInput) (backend.CreateOrderResult, error)
	InitializePayment(ctx context.Context, orderID, email string, amount int64) (string, error)
	ConfirmPayment(ctx context.Context, orderID string) error
}

type cartView interface {
	Get(ctx context.Context, sessionID string) domain.CartState
}

type snapshotStore interface {
	SaveSnapshot(ctx context.Context, sessionID string, snap domain.OrderSnapshot) error
	Snapshot(ctx context.Context, sessionID string) (domain.OrderSnapshot, error)
}

// OutcomeKind tags the result of a checkout submission.
type OutcomeKind int

const (
	// OutcomeInvalid means validation failed and no network call was made.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeRedirect means the browser must navigate to the hosted
	// payment page.
	OutcomeRedirect
	// OutcomeTransfer means the order awaits a manual bank transfer and a
	// snapshot was persisted for the confirmation view.
	OutcomeTransfer
)

// Outcome is the typed result of Submit. Exactly one of FieldErrors,
// RedirectURL or Snapshot is meaningful, selected by Kind.
type Outcome struct {
	Kind        OutcomeKind
	FieldErrors map[string]string
	RedirectURL string
	Snapshot    domain.OrderSnapshot
}

// flowTTL bounds how long an abandoned flow keeps its state entry.
const flowTTL = time.Hour

type flowEntry struct {
	state State
	at    time.Time
}

// Dispatcher drives the checkout sequence:
//
//	Idle → Validating → Submitting → {RedirectingToGateway |
//	AwaitingTransferConfirmation} → Done
//
// A failed step never advances the flow; the caller retries manually.
// A session holds a state entry only while a flow is live: returning to
// Idle drops it, and entries older than flowTTL are swept on the next
// submission.
type Dispatcher struct {
	orders orderClient
	carts  cartView
	snaps  snapshotStore
	logger *log.Logger
	ttl    time.Duration

	mu       sync.Mutex
	states   map[string]flowEntry
	inflight map[string]bool
}

// NewDispatcher wires a Dispatcher.
func NewDispatcher(orders orderClient, carts cartView, snaps snapshotStore, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		orders:   orders,
		carts:    carts,
		snaps:    snaps,
		logger:   logger,
		ttl:      flowTTL,
		states:   make(map[string]flowEntry),
		inflight: make(map[string]bool),
	}
}

// State reports the session's current checkout state.
func (d *Dispatcher) State(sessionID string) State {
	d.mu.Lock()
	defer d.mu.Unlock()
	entry, ok := d.states[sessionID]
	if !ok {
		return StateIdle
	}
	return entry.state
}

func (d *Dispatcher) setState(sessionID string, s State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s == StateIdle {
		delete(d.states, sessionID)
		return
	}
	d.states[sessionID] = flowEntry{state: s, at: time.Now()}
}

func (d *Dispatcher) pruneLocked(now time.Time) {
	for id, entry := range d.states {
		if now.Sub(entry.at) > d.ttl {
			delete(d.states, id)
		}
	}
}

// Submit runs the checkout flow for a session. Only one submission may be
// in flight per session; concurrent calls get ErrSubmitInFlight, which is
// the server-side form of disabling the submit control.
func (d *Dispatcher) Submit(ctx context.Context, sessionID string, details domain.CustomerDetails, method domain.PaymentMethod) (Outcome, error) {
	d.mu.Lock()
	if d.inflight[sessionID] {
		d.mu.Unlock()
		return Outcome{}, domain.ErrSubmitInFlight
	}
	d.inflight[sessionID] = true
	d.pruneLocked(time.Now())
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.inflight, sessionID)
		d.mu.Unlock()
	}()

	d.setState(sessionID, StateValidating)
	if fieldErrs := Validate(details); len(fieldErrs) > 0 {
		d.setState(sessionID, StateIdle)
		return Outcome{Kind: OutcomeInvalid, FieldErrors: fieldErrs}, nil
	}

	d.setState(sessionID, StateSubmitting)
	state := d.carts.Get(ctx, sessionID)

	result, err := d.orders.CreateOrder(ctx, backend.CreateOrderInput{
		SessionID:       sessionID,
		CustomerDetails: details,
		PaymentMethod:   method,
		IdempotencyKey:  uuid.NewString(),
	})
	if err != nil {
		d.setState(sessionID, StateIdle)
		return Outcome{}, err
	}

	if method == domain.PaymentGateway {
		authURL, err := d.orders.InitializePayment(ctx, result.OrderID, details.Email, result.TotalAmount)
		if err != nil {
			// The order exists but has no payment page. The flow stays in
			// Submitting; the user's only recourse is a manual retry.
			d.logger.Printf("initialize payment for order %s: %v", result.OrderID, err)
			return Outcome{}, err
		}
		d.setState(sessionID, StateRedirectingToGateway)
		return Outcome{Kind: OutcomeRedirect, RedirectURL: authURL}, nil
	}

	snap := domain.OrderSnapshot{
		OrderID:         result.OrderID,
		TotalAmount:     result.TotalAmount,
		PaymentMethod:   method,
		CustomerDetails: details,
		Items:           state.Items,
		CreatedAt:       time.Now().UTC(),
	}
	if err := d.snaps.SaveSnapshot(ctx, sessionID, snap); err != nil {
		d.setState(sessionID, StateIdle)
		return Outcome{}, err
	}
	d.setState(sessionID, StateAwaitingTransferConfirmation)
	return Outcome{Kind: OutcomeTransfer, Snapshot: snap}, nil
}

// ConfirmPayment signals the customer has sent the manual transfer for
// the session's stored order. It is retryable indefinitely and is not
// guarded against concurrent calls. On success it returns the confirmed
// order id.
func (d *Dispatcher) ConfirmPayment(ctx context.Context, sessionID string) (string, error) {
	snap, err := d.snaps.Snapshot(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := d.orders.ConfirmPayment(ctx, snap.OrderID); err != nil {
		return "", err
	}
	d.setState(sessionID, StateDone)
	return snap.OrderID, nil
}
