package models

import "time"

const EquipmentTable = "rbo_equipment"
const BrandTable = "rbo_brands"

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Equipment is one rentable model of gear. Count is the total owned units;
// how many are actually on the shelf is derived per read, never stored.
type Equipment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;index;not null" json:"name"`
	Count       int       `gorm:"not null;default:0" json:"count"`
	BrandID     uint      `gorm:"index" json:"brandId"`
	Brand       *Brand    `json:"brand,omitempty"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:500" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Brand) TableName() string     { return BrandTable }
func (Equipment) TableName() string { return EquipmentTable }

// AugmentedEquipment extends an equipment row with the computed availability
// fields. Remain may go negative when the item is overcommitted.
type AugmentedEquipment struct {
	Equipment
	Remain int `json:"remain"`
	Broken int `json:"broken"`
}
