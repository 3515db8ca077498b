package entities

import (
	"time"
)

type Drink struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string `gorm:"type:varchar(80);uniqueIndex;not null" json:"title"`
	Recipe string `gorm:"type:text;not null" json:"recipe"`

	Timestamp
}

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}
