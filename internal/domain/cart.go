package domain

// CartLine is a snapshot of a product taken at add-to-cart time. The name,
// price and image are intentionally decoupled from the live product row.
type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Qty       int    `json:"qty"`
}

// Cart is a value object held in session state. Operations return a new
// cart so the logic stays testable independent of the transport layer.
type Cart []CartLine

// Add merges qty into an existing line for the same product, or appends
// the snapshot as a new line. Quantity is clamped to a minimum of 1.
func (c Cart) Add(line CartLine, qty int) Cart {
	if qty < 1 {
		qty = 1
	}
	for i := range c {
		if c[i].ProductID == line.ProductID {
			out := append(Cart(nil), c...)
			out[i].Qty += qty
			return out
		}
	}
	line.Qty = qty
	return append(append(Cart(nil), c...), line)
}

// Update sets the quantity of an existing line (clamped >= 1). Products
// not in the cart are left alone.
func (c Cart) Update(productID int64, qty int) Cart {
	if qty < 1 {
		qty = 1
	}
	for i := range c {
		if c[i].ProductID == productID {
			out := append(Cart(nil), c...)
			out[i].Qty = qty
			return out
		}
	}
	return c
}

func (c Cart) Clear() Cart { return Cart{} }

// Total recomputes the sum of price*qty on every call.
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c {
		total += l.Price * int64(l.Qty)
	}
	return total
}

func (c Cart) Empty() bool { return len(c) == 0 }
