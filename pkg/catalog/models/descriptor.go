package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func init() {
	registerForAutomigration(&Descriptor{})
}

// Descriptor is a catalogued schema, Definition holds the
// JSON encoded schema definition.
type Descriptor struct {
	gorm.Model
	UUID       string `gorm:"uniqueIndex"`
	Dataset    string `gorm:"uniqueIndex:idx_dataset_name"`
	Name       string `gorm:"uniqueIndex:idx_dataset_name"`
	Kind       string
	Definition string
}

func (d *Descriptor) BeforeCreate(tx *gorm.DB) error {
	d.UUID = uuid.NewString()
	return nil
}
