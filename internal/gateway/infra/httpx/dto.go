package httpx

// Required fields are pointers so a missing key can be told apart from a
// zero value during structural validation.

type CreateOrderRequest struct {
	LineItems       *[]LineItemDTO `json:"line_items"`
	CustomerEmail   *string        `json:"customer_email"`
	FinancialStatus *string        `json:"financial_status"`
	Test            *bool          `json:"test"`
}

type LineItemDTO struct {
	VariantID *int64   `json:"variant_id"`
	Quantity  *int     `json:"quantity"`
	Title     *string  `json:"title"`
	Price     *float64 `json:"price"`
}

type OrderStatusRequest struct {
	OrderID *int64 `json:"order_id"`
}

// Envelope is the uniform response wrapper returned by every business
// endpoint. Both data and error are always present in the serialized form:
// on success error is null, on failure data is an empty object.
type Envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   *string        `json:"error"`
}

// ErrorResponse is the body of a structural-validation rejection. These are
// emitted before the delegated call runs and never use the Envelope shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
