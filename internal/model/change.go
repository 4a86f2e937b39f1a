package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and standard audit trails.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}

// BeforeCreate generates the UUID primary key.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	base.ID = uuid.New()
	return
}

// StockChange is one journal entry for a committed stock edit. The canonical
// stock value lives behind the catalog gateway; this journal only records
// who changed what, for the dashboard feed and movement charts.
type StockChange struct {
	BaseModel
	ProductID   string `gorm:"type:varchar(64);index;not null" json:"product_id"`
	ProductName string `gorm:"type:varchar(255)" json:"product_name"`
	ColorName   string `gorm:"type:varchar(100)" json:"color_name"`
	ColorIndex  int    `gorm:"not null" json:"color_index"`
	OldStock    int    `gorm:"not null" json:"old_stock"`
	NewStock    int    `gorm:"not null" json:"new_stock"`
	ActorName   string `gorm:"type:varchar(255)" json:"actor_name"`
	ActorEmail  string `gorm:"type:varchar(255)" json:"actor_email"`
}

// Delta returns the signed unit change recorded by the entry.
func (c StockChange) Delta() int {
	return c.NewStock - c.OldStock
}
