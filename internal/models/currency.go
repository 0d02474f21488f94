package models

// Currency is the persisted row of the currency table.
type Currency struct {
	ID   int64  `db:"id"`
	Code string `db:"code"` // unique, e.g. "USD"
	Name string `db:"name"`
	AuditFields
}
