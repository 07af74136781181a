package entity

// Product is the descriptive catalog metadata fetched per line item. No field
// of it is persisted; it only enriches order-processing logs.
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Vendor      string `json:"vendor"`
	ProductType string `json:"product_type"`
	Status      string `json:"status"`
}
