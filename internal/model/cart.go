package model

import "encoding/json"

type LineItem struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

// Cart maps product id to line item, keeping first-add order.
// A Cart value is never modified after construction; Put returns a new Cart.
// The zero value is an empty cart.
type Cart struct {
	order []int64
	lines map[int64]LineItem
}

func NewCart(items ...LineItem) Cart {
	c := Cart{}
	for _, item := range items {
		c = c.Put(item)
	}
	return c
}

func (c Cart) Len() int {
	return len(c.order)
}

func (c Cart) Line(productID int64) (LineItem, bool) {
	item, ok := c.lines[productID]
	return item, ok
}

// Lines returns the line items in the order their products were first added.
func (c Cart) Lines() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

// Put returns a copy of c with the line for item.Product.ID set to item.
func (c Cart) Put(item LineItem) Cart {
	id := item.Product.ID

	lines := make(map[int64]LineItem, len(c.lines)+1)
	for k, v := range c.lines {
		lines[k] = v
	}

	order := make([]int64, len(c.order), len(c.order)+1)
	copy(order, c.order)
	if _, exists := c.lines[id]; !exists {
		order = append(order, id)
	}

	lines[id] = item
	return Cart{order: order, lines: lines}
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lines())
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = NewCart(items...)
	return nil
}
