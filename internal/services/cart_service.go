package services

import (
	"neotech/internal/domain"
	"neotech/internal/repos"
	"neotech/internal/sessions"
)

// CartService applies cart value operations to the session-held cart.
// No stock or availability re-check happens at add or checkout time.
type CartService struct {
	Sessions *sessions.Store
	Prods    *repos.ProductRepo
}

func NewCartService(store *sessions.Store, prods *repos.ProductRepo) *CartService {
	return &CartService{Sessions: store, Prods: prods}
}

// Add snapshots the product's name, price and image into the cart.
// An unknown product id is reported so the handler can redirect silently.
func (s *CartService) Add(sid string, productID int64, qty int) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return err
	}
	cart := sess.Cart.Add(domain.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}, qty)
	return s.Sessions.SaveCart(sid, cart)
}

// Update sets the quantity of a line already in the cart; a product that
// is not in the cart is a no-op.
func (s *CartService) Update(sid string, productID int64, qty int) error {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return err
	}
	return s.Sessions.SaveCart(sid, sess.Cart.Update(productID, qty))
}

func (s *CartService) Clear(sid string) error {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return err
	}
	return s.Sessions.SaveCart(sid, sess.Cart.Clear())
}

type CartView struct {
	Lines domain.Cart
	Total int64
}

func (s *CartService) View(sid string) (CartView, error) {
	sess, err := s.Sessions.Get(sid)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Lines: sess.Cart, Total: sess.Cart.Total()}, nil
}
