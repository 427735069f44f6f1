package models

import "time"

const RentTable = "rbo_rents"
const BrokenTable = "rbo_brokens"

const (
	RentPending  = "pending"
	RentApproved = "approved"
	RentRejected = "rejected"
)

const (
	BrokenPending  = "pending"
	BrokenResolved = "resolved"
)

// Rent is a loan of Count units of one equipment item. A rent is "open"
// while status <> rejected and return_at is null; only open rents count
// against availability.
type Rent struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EquipmentID uint       `gorm:"index;not null" json:"equipmentId"`
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Count       int        `gorm:"not null" json:"count"`
	Status      string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	ReturnAt    *time.Time `gorm:"index" json:"returnAt,omitempty"`
	Note        string     `gorm:"size:255" json:"note,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Broken is a report of damaged units. It counts against availability while
// status = pending.
type Broken struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EquipmentID uint      `gorm:"index;not null" json:"equipmentId"`
	UserID      uint      `gorm:"index" json:"userId"`
	Count       int       `gorm:"not null" json:"count"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Note        string    `gorm:"size:255" json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Rent) TableName() string   { return RentTable }
func (Broken) TableName() string { return BrokenTable }
