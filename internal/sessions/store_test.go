package sessions_test

import (
	"testing"

	"neotech/internal/domain"
	"neotech/internal/repos"
	"neotech/internal/sessions"
)

func TestCartRoundTrip(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := sessions.NewStore(db)

	sid := "sid-roundtrip"
	cart := domain.Cart{{ProductID: 1, Name: "NeoPhone X1", Price: 250000, Image: "/img/phone.png", Qty: 2}}
	if err := store.SaveCart(sid, cart); err != nil {
		t.Fatal(err)
	}

	sess, err := store.Get(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(sess.Cart) != 1 || sess.Cart[0].ProductID != 1 || sess.Cart[0].Qty != 2 {
		t.Fatalf("cart did not survive the round trip: %+v", sess.Cart)
	}
	if sess.Cart[0].Name != "NeoPhone X1" || sess.Cart[0].Price != 250000 {
		t.Fatalf("snapshot fields lost: %+v", sess.Cart[0])
	}
	if sess.UserID != nil {
		t.Fatalf("fresh session should be a guest, got user %d", *sess.UserID)
	}
}

func TestBindAndUnbindUser(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := sessions.NewStore(db)

	sid := "sid-bind"
	if err := store.BindUser(sid, 1); err != nil {
		t.Fatal(err)
	}
	sess, err := store.Get(sid)
	if err != nil {
		t.Fatal(err)
	}
	if sess.UserID == nil || *sess.UserID != 1 {
		t.Fatalf("want user 1 bound, got %+v", sess.UserID)
	}

	if err := store.UnbindUser(sid); err != nil {
		t.Fatal(err)
	}
	sess, err = store.Get(sid)
	if err != nil {
		t.Fatal(err)
	}
	if sess.UserID != nil {
		t.Fatalf("want guest after unbind, got user %d", *sess.UserID)
	}
}

func TestExpiredSessionReset(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := sessions.NewStore(db)

	sid := "sid-expired"
	if err := store.SaveCart(sid, domain.Cart{{ProductID: 1, Price: 100, Qty: 1}}); err != nil {
		t.Fatal(err)
	}
	// Force the row past its expiry
	if _, err := db.Exec(`UPDATE sessions SET expires_at='2000-01-01T00:00:00Z' WHERE id=?`, sid); err != nil {
		t.Fatal(err)
	}

	sess, err := store.Get(sid)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Cart.Empty() || sess.UserID != nil {
		t.Fatalf("expired session not reset: %+v", sess)
	}
}
