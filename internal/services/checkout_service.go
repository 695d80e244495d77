package services

import (
	"context"
	"errors"

	"neotech/internal/domain"
	"neotech/internal/payments"
	"neotech/internal/repos"
	"neotech/internal/sessions"
)

// ErrPaymentFailed covers every non-success verification outcome: declined,
// pending, abandoned — the gateway response collapses to one failure state.
var ErrPaymentFailed = errors.New("payment not successful")

// CheckoutService verifies a payment reference with the gateway and, on
// success, materializes the order from the session cart.
type CheckoutService struct {
	Sessions *sessions.Store
	Orders   *repos.OrderRepo
	Gateway  *payments.Client
}

func NewCheckoutService(store *sessions.Store, orders *repos.OrderRepo, gw *payments.Client) *CheckoutService {
	return &CheckoutService{Sessions: store, Orders: orders, Gateway: gw}
}

// VerifyAndPlace confirms the reference with the gateway, then writes the
// order and its line items in one transaction and clears the cart. The
// total is recomputed from the session cart; client-side totals are never
// trusted. Guest sessions produce orders with a NULL user id.
func (s *CheckoutService) VerifyAndPlace(ctx context.Context, sid, reference string) (int64, error) {
	res, err := s.Gateway.Verify(ctx, reference)
	if err != nil {
		return 0, err
	}
	if !res.Success() {
		return 0, ErrPaymentFailed
	}

	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return 0, err
	}
	orderID, err := s.Orders.CreateWithItems(sess.UserID, sess.Cart.Total(), "PAID", reference, sess.Cart)
	if err != nil {
		return 0, err
	}
	if err := s.Sessions.SaveCart(sid, sess.Cart.Clear()); err != nil {
		return 0, err
	}
	return orderID, nil
}

// History returns the orders owned by the user bound to the session. Guest
// sessions own no orders.
func (s *CheckoutService) History(sid string) ([]domain.Order, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return nil, err
	}
	if sess.UserID == nil {
		return nil, nil
	}
	return s.Orders.ListByUser(*sess.UserID)
}
