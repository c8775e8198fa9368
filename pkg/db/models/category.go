package models

import "time"

// Category names a level of the catalog taxonomy. Products reference up to
// three levels by raw id; the read path joins to resolve names.
type Category struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
