package domain

import "time"

type FormulaKind string

const (
	FormulaHourly  FormulaKind = "hourly"
	FormulaPackage FormulaKind = "package"
)

// Formula is a bookable offer: either billed per hour or at a flat package
// price regardless of duration.
type Formula struct {
	ID        int64       `json:"id" gorm:"column:id;primaryKey"`
	Name      string      `json:"name" gorm:"column:name"`
	Kind      FormulaKind `json:"kind" gorm:"column:kind"`
	PriceHour float64     `json:"price_hour" gorm:"column:price_hour"`
	PriceFlat float64     `json:"price_flat" gorm:"column:price_flat"`
	IsActive  bool        `json:"is_active" gorm:"column:is_active"`
	CreatedAt time.Time   `json:"created_at" gorm:"column:created_at"`
}

func (Formula) TableName() string { return "formulas" }
