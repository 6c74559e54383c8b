package entity

// RawOrder is the loosely-typed order record posted by the storefront
// checkout. It may carry an "items" sequence (cart checkout) or flat
// top-level product fields (buy-now flow). No field is guaranteed present,
// and numeric fields may arrive as JSON numbers or strings.
type RawOrder map[string]any

// OrderResponse is the record returned by the order-capture flow alongside
// the raw order. Both fields ("orderId", "status") are optional.
type OrderResponse map[string]any

// Field returns the raw value for key, or nil when the record itself or
// the key is absent.
func (o RawOrder) Field(key string) any {
	if o == nil {
		return nil
	}
	return o[key]
}

// Items returns the order's item sequence when present. The second return
// is false for buy-now orders, which carry product fields at the top level.
func (o RawOrder) Items() ([]any, bool) {
	items, ok := o.Field("items").([]any)
	return items, ok
}

// Field returns the raw value for key, or nil when the record itself or
// the key is absent.
func (r OrderResponse) Field(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}
