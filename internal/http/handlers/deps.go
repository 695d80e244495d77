package handlers

import (
	"neotech/internal/config"
	"neotech/internal/payments"
	"neotech/internal/repos"
	"neotech/internal/services"
	"neotech/internal/sessions"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	AuthHandler     *AuthHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler

	Auth *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	store := sessions.NewStore(db)

	authSvc := services.NewAuthService(userRepo, store)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(store, prodRepo)
	gateway := payments.NewClient(cfg.PaystackSecret, cfg.PaystackBaseURL)
	checkoutSvc := services.NewCheckoutService(store, orderRepo, gateway)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		AuthHandler:     &AuthHandler{Auth: authSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Orders: checkoutSvc, PublicKey: cfg.PaystackPublic},
		AdminHandler:    &AdminHandler{Prods: prodRepo, Cats: catRepo, Orders: orderRepo},
		Auth:            authSvc,
	}
}
