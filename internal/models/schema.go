package models

// All lists the persisted models for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Stock{},
		&PriceBar{},
		&Customer{},
		&Portfolio{},
		&PortfolioStock{},
	}
}
