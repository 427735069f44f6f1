package db

import (
	"Gin_postgres_rental_backoffice/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

// Equipment

func (r *Repo) CreateEquipment(ctx context.Context, e *models.Equipment) error {
	if err := r.DB.WithContext(ctx).Create(e).Error; err != nil {
		return err
	}
	// Read back with the brand relation so create returns the same shape as
	// get/list.
	return r.DB.WithContext(ctx).Preload("Brand").First(e, "id = ?", e.ID).Error
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var e models.Equipment
	if err := r.DB.WithContext(ctx).Preload("Brand").First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

type EquipmentPage struct {
	Items []models.Equipment `json:"items"`
	Total int64              `json:"total"`
}

// SearchEquipment filters on a name substring and paginates. Total counts
// every match regardless of limit/offset.
func (r *Repo) SearchEquipment(ctx context.Context, name string, limit, offset int) (*EquipmentPage, error) {
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	tx := r.DB.WithContext(ctx).Model(&models.Equipment{})
	if s := strings.TrimSpace(name); s != "" {
		tx = tx.Where("name LIKE ?", "%"+s+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Equipment
	if err := tx.
		Preload("Brand").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &EquipmentPage{Items: items, Total: total}, nil
}

// UpdateEquipment applies a partial column update and returns the fresh row.
// gorm.ErrRecordNotFound when the id does not exist.
func (r *Repo) UpdateEquipment(ctx context.Context, id uint, fields map[string]any) (*models.Equipment, error) {
	res := r.DB.WithContext(ctx).Model(&models.Equipment{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindEquipmentByID(ctx, id)
}

// DeleteEquipment removes the row and returns the deleted snapshot with the
// brand still attached.
func (r *Repo) DeleteEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	e, err := r.FindEquipmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Delete(&models.Equipment{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return e, nil
}

type EquipmentName struct {
	Name string `json:"name"`
}

// DistinctEquipmentNames feeds lookup/autocomplete. Names only, no paging.
func (r *Repo) DistinctEquipmentNames(ctx context.Context) ([]EquipmentName, error) {
	var names []EquipmentName
	err := r.DB.WithContext(ctx).Model(&models.Equipment{}).
		Distinct("name").
		Scan(&names).Error
	return names, err
}

// CalculateFields augments an equipment row with its derived availability
// numbers: remain = count - open rents - pending brokens, broken = pending
// brokens. Both sums run in one transaction so remain reflects a single
// snapshot of the rent and broken tables. Empty aggregates count as zero.
func (r *Repo) CalculateFields(ctx context.Context, e models.Equipment) (models.AugmentedEquipment, error) {
	var rented, broken int
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Rent{}).
			Where("equipment_id = ? AND status <> ? AND return_at IS NULL", e.ID, models.RentRejected).
			Select("COALESCE(SUM(count), 0)").
			Scan(&rented).Error; err != nil {
			return err
		}
		return tx.Model(&models.Broken{}).
			Where("equipment_id = ? AND status = ?", e.ID, models.BrokenPending).
			Select("COALESCE(SUM(count), 0)").
			Scan(&broken).Error
	})
	if err != nil {
		return models.AugmentedEquipment{}, err
	}
	return models.AugmentedEquipment{
		Equipment: e,
		Remain:    e.Count - rented - broken,
		Broken:    broken,
	}, nil
}
