package entities

import (
	"gorm.io/datatypes"
)

// KeyValue is one entry of the flat key-value namespace.
type KeyValue struct {
	Key   string         `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`

	Timestamp
}

func (KeyValue) TableName() string {
	return "key_value_store"
}
