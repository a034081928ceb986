package repo

import (
	"context"
	"errors"

	"github.com/bookstore/services/items/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when no row matches the requested id
var ErrItemNotFound = errors.New("item not found")

const insertItemSQL = `INSERT INTO items (name, description) VALUES (?, ?) RETURNING id, name, description, created_at`

// ItemRepository handles items table operations. Each method issues exactly
// one statement against the shared pool.
type ItemRepository struct {
	db  *db.DB
	log *zap.Logger
}

// NewItemRepository creates a new item repository
func NewItemRepository(database *db.DB, logger *zap.Logger) *ItemRepository {
	return &ItemRepository{
		db:  database,
		log: logger,
	}
}

// ListItems returns every item ordered by ascending id. The result is never nil.
func (r *ItemRepository) ListItems(ctx context.Context) ([]db.Item, error) {
	items := make([]db.Item, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		r.log.Error("Failed to list items", zap.Error(err))
		return nil, err
	}

	return items, nil
}

// GetItem retrieves an item by id
func (r *ItemRepository) GetItem(ctx context.Context, id int32) (*db.Item, error) {
	var item db.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		r.log.Error("Failed to get item", zap.Int32("id", id), zap.Error(err))
		return nil, err
	}

	return &item, nil
}

// CreateItem inserts a row and returns it as stored. id and created_at are
// assigned by the database and read back from the INSERT itself.
func (r *ItemRepository) CreateItem(ctx context.Context, name string, description *string) (*db.Item, error) {
	var item db.Item
	result := r.db.WithContext(ctx).Raw(insertItemSQL, name, description).Scan(&item)
	if result.Error != nil {
		r.log.Error("Failed to create item", zap.String("name", name), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		r.log.Error("Insert returned no row", zap.String("name", name))
		return nil, errors.New("insert returned no row")
	}

	r.log.Info("Item created", zap.Int32("id", item.ID), zap.String("name", item.Name))
	return &item, nil
}

// DeleteItem removes an item by id. The affected-row count decides whether
// the item existed.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int32) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db.Item{})
	if result.Error != nil {
		r.log.Error("Failed to delete item", zap.Int32("id", id), zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	r.log.Info("Item deleted", zap.Int32("id", id))
	return nil
}

// Count returns the number of rows in the items table
func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&db.Item{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
