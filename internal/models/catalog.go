package models

const (
	ItemKindPlan            = "plan"
	ItemKindPhysicalJournal = "physical_journal"
)

// CatalogItem is one purchasable price in the payment processor's catalog.
type CatalogItem struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Kind        string `json:"kind" toml:"kind"`
	PriceID     string `json:"price_id" toml:"price_id"`
	Amount      int    `json:"amount" toml:"amount"`
	Description string `json:"description" toml:"description"`
	Popular     bool   `json:"popular,omitempty" toml:"popular"`
}
