package domain

// Product is a catalog entry supplied by a marketplace supplier.
// Name is canonical: lower-cased and trimmed at the catalog boundary.
// SupplierName is empty when the supplierId has no matching user document;
// such a product is still matchable but must never reach a line item.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	SupplierID   string  `json:"supplierId"`
	SupplierName string  `json:"supplierName,omitempty"`
}

// HasSupplier reports whether the product's supplier reference resolved.
func (p Product) HasSupplier() bool {
	return p.SupplierName != ""
}

// LineItem is one (product, quantity) pair in a parsed order.
// A ParseResult holds at most one LineItem per product id.
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ParseResult is the structured outcome of interpreting one transcript.
// TokenCount lets callers tell "empty input" apart from "nothing matched".
type ParseResult struct {
	LineItems  []LineItem `json:"lineItems"`
	Unresolved []string   `json:"unresolvedTerms"`
	TokenCount int        `json:"tokenCount"`
}

// VoiceOrderRequest is a transcribed voice command plus its recognition
// locale. Text may be empty: an empty transcript is a valid input whose
// outcome is "could not understand", not a validation failure.
type VoiceOrderRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// VoiceOrderResponse pairs the parse result with its rendered confirmation.
type VoiceOrderResponse struct {
	Result       ParseResult `json:"result"`
	Confirmation string      `json:"confirmation"`
}
