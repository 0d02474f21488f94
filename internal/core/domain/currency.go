package domain

// Currency is a Reference Store entry: a currency code and its display name.
type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"` // e.g., "USD"
	Name string `json:"name"` // e.g., "US Dollar"
	AuditFields
}
