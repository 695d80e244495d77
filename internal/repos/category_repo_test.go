package repos_test

import (
	"testing"

	"neotech/internal/repos"
)

// Deleting a category must not cascade: products keep their category_id
// even once it points at nothing.
func TestCategoryDeleteLeavesDanglingProducts(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cats := repos.NewCategoryRepo(db)
	prods := repos.NewProductRepo(db)

	// Seeded product 1 (NeoPhone X1) belongs to seeded category 1.
	if err := cats.Delete(1); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	p, err := prods.Get(1)
	if err != nil {
		t.Fatalf("product should still exist: %v", err)
	}
	if p.CategoryID != 1 {
		t.Fatalf("want dangling category_id 1, got %d", p.CategoryID)
	}

	if _, err := cats.Get(1); err == nil {
		t.Fatal("category should be gone")
	}
}
