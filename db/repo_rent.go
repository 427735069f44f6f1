package db

import (
	"Gin_postgres_rental_backoffice/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEquipmentNotFound = errors.New("equipment not found")
var ErrRentClosed = errors.New("rent is not open")

// Rents

func (r *Repo) CreateRent(ctx context.Context, userID, equipmentID uint, count int, note string) (*models.Rent, error) {
	var rent *models.Rent
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Equipment{}).Where("id = ?", equipmentID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrEquipmentNotFound
		}
		rt := &models.Rent{
			EquipmentID: equipmentID,
			UserID:      userID,
			Count:       count,
			Status:      models.RentPending,
			Note:        note,
		}
		if err := tx.Create(rt).Error; err != nil {
			return err
		}
		rent = rt
		return nil
	})
	return rent, err
}

// SetRentStatus moves a rent to approved/rejected. Closed rents stay as they
// were returned.
func (r *Repo) SetRentStatus(ctx context.Context, rentID uint, status string) (*models.Rent, error) {
	var rt models.Rent
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rt, "id = ?", rentID).Error; err != nil {
			return err
		}
		if rt.ReturnAt != nil {
			return ErrRentClosed
		}
		rt.Status = status
		return tx.Save(&rt).Error
	})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// ReturnRent stamps the return time on an open rent. Idempotent: a second
// return keeps the first timestamp.
func (r *Repo) ReturnRent(ctx context.Context, rentID uint) (*models.Rent, error) {
	var rt models.Rent
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rt, "id = ?", rentID).Error; err != nil {
			return err
		}
		if rt.ReturnAt != nil {
			return nil
		}
		now := time.Now().UTC()
		rt.ReturnAt = &now
		return tx.Save(&rt).Error
	})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *Repo) ListRents(ctx context.Context, equipmentID uint, status string) ([]models.Rent, error) {
	q := r.DB.WithContext(ctx).Model(&models.Rent{}).Order("created_at DESC")
	if equipmentID != 0 {
		q = q.Where("equipment_id = ?", equipmentID)
	}
	switch status {
	case "open":
		q = q.Where("status <> ? AND return_at IS NULL", models.RentRejected)
	case "returned":
		q = q.Where("return_at IS NOT NULL")
	case "":
	default:
		q = q.Where("status = ?", status)
	}
	var rs []models.Rent
	if err := q.Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

// Brokens

func (r *Repo) CreateBroken(ctx context.Context, userID, equipmentID uint, count int, note string) (*models.Broken, error) {
	var report *models.Broken
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Equipment{}).Where("id = ?", equipmentID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrEquipmentNotFound
		}
		b := &models.Broken{
			EquipmentID: equipmentID,
			UserID:      userID,
			Count:       count,
			Status:      models.BrokenPending,
			Note:        note,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		report = b
		return nil
	})
	return report, err
}

// ResolveBroken marks a report resolved so it stops counting against
// availability. Idempotent.
func (r *Repo) ResolveBroken(ctx context.Context, id uint) (*models.Broken, error) {
	var b models.Broken
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return err
		}
		if b.Status == models.BrokenResolved {
			return nil
		}
		b.Status = models.BrokenResolved
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
