package model

// Item is one estimator line. Quantity and Price keep the raw text typed
// into the form; they are parsed only when a total is computed.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// Defaults for a freshly added line.
const (
	DefaultQuantity = "1"
	DefaultPrice    = "0"
)

// NewItem returns a blank line with default quantity and price.
func NewItem() Item {
	return Item{Quantity: DefaultQuantity, Price: DefaultPrice}
}
