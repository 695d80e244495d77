package payments_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"neotech/internal/payments"
)

func TestVerifySendsBearerAndPath(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":true,"message":"ok","data":{"status":"success","reference":"ref/1","amount":100}}`)
	}))
	defer srv.Close()

	c := payments.NewClient("sk_test_abc", srv.URL)
	res, err := c.Verify(context.Background(), "ref/1")
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("bad auth header: %q", gotAuth)
	}
	if gotPath != "/transaction/verify/ref%2F1" {
		t.Fatalf("reference not escaped in path: %q", gotPath)
	}
	if !res.Success() {
		t.Fatalf("want success, got %+v", res)
	}
}

func TestSuccessIsStrict(t *testing.T) {
	cases := []struct {
		outer bool
		inner string
		want  bool
	}{
		{true, "success", true},
		{true, "abandoned", false},
		{true, "pending", false},
		{false, "success", false},
		{false, "failed", false},
	}
	for _, tc := range cases {
		var r payments.VerifyResult
		r.Status = tc.outer
		r.Data.Status = tc.inner
		if r.Success() != tc.want {
			t.Errorf("status=%v data.status=%q: want %v", tc.outer, tc.inner, tc.want)
		}
	}
}

func TestVerifyNoSecret(t *testing.T) {
	c := payments.NewClient("", "http://127.0.0.1:0")
	if _, err := c.Verify(context.Background(), "abc"); err != payments.ErrNoSecret {
		t.Fatalf("want ErrNoSecret, got %v", err)
	}
}

func TestVerifyNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := payments.NewClient("sk_test_abc", srv.URL)
	if _, err := c.Verify(context.Background(), "abc"); err == nil {
		t.Fatal("want error on non-2xx response")
	}
}
