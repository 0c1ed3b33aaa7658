package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taxi_service/internal/models"
	"taxi_service/internal/pagination"
	"taxi_service/internal/search"
	"taxi_service/internal/storage"
)

type manufacturerRepo struct {
	db *gorm.DB
}

func (r *manufacturerRepo) Create(ctx context.Context, m *models.Manufacturer) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create manufacturer: %w", translate(err))
	}
	return nil
}

func (r *manufacturerRepo) Update(ctx context.Context, m *models.Manufacturer) error {
	res := r.db.WithContext(ctx).
		Model(&models.Manufacturer{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{"name": m.Name, "country": m.Country})
	if res.Error != nil {
		return fmt.Errorf("update manufacturer %d: %w", m.ID, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	updated, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *updated
	return nil
}

// Delete relies on ON DELETE CASCADE to remove the manufacturer's cars.
func (r *manufacturerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Manufacturer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete manufacturer %d: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *manufacturerRepo) GetByID(ctx context.Context, id uint) (*models.Manufacturer, error) {
	var m models.Manufacturer
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *manufacturerRepo) List(ctx context.Context, c search.Criteria, req pagination.Request) (pagination.Page[models.Manufacturer], error) {
	q := r.db.WithContext(ctx).Model(&models.Manufacturer{})
	if f := c.Get(search.KeyName); f.Active() {
		q = q.Where("name ILIKE ?", f.Pattern())
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return pagination.Page[models.Manufacturer]{}, fmt.Errorf("count manufacturers: %w", err)
	}
	w := pagination.Resolve(total, req)

	var items []models.Manufacturer
	err := q.Order("name, id").Offset(w.Offset).Limit(w.Limit()).Find(&items).Error
	if err != nil {
		return pagination.Page[models.Manufacturer]{}, fmt.Errorf("list manufacturers: %w", err)
	}
	return pagination.NewPage(items, w), nil
}

func (r *manufacturerRepo) All(ctx context.Context) ([]models.Manufacturer, error) {
	var items []models.Manufacturer
	if err := r.db.WithContext(ctx).Order("name, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("all manufacturers: %w", err)
	}
	return items, nil
}

func (r *manufacturerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Manufacturer{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count manufacturers: %w", err)
	}
	return n, nil
}
