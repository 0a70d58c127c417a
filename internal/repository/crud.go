package repository

import (
	"context"
	"math"
	"time"

	"film-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

const (
	DefaultPageSize = 10
	// AllPages disables pagination. It is never produced by request parsing.
	AllPages = -1
	// MaxPage bounds page numbers so offsets stay far from overflow.
	MaxPage = math.MaxInt32
)

// pageOffset returns the row offset of page, saturating instead of wrapping.
func pageOffset(page, perPage int) int {
	if page <= 1 || perPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// ListOptions controls generic listing. Page <= 0 returns every row.
type ListOptions struct {
	Page     int
	PageSize int
	Order    SortOrder
}

func (o ListOptions) paginated() bool {
	return o.Page > 0
}

func (o ListOptions) limit() int {
	if o.PageSize <= 0 {
		return DefaultPageSize
	}
	return o.PageSize
}

// crudRepository holds the persistence logic shared by every entity. Entity
// repositories embed it and add their own write hooks.
type crudRepository[T any] struct {
	db       *database.Database
	entity   string
	timeout  time.Duration
	preloads []string
}

func newCRUD[T any](db *database.Database, entity string, preloads ...string) crudRepository[T] {
	return crudRepository[T]{
		db:       db,
		entity:   entity,
		timeout:  db.GetQueryTimeout(),
		preloads: preloads,
	}
}

func (r *crudRepository[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *crudRepository[T]) preloaded(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// transaction runs fn as one unit of work bounded by the query timeout.
func (r *crudRepository[T]) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.Transaction(ctx, fn)
}

func (r *crudRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		items []T
		total int64
	)

	query := r.db.WithContext(ctx).Model(new(T))
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.preloaded(query).Order(clause.OrderByColumn{
		Column: clause.Column{Name: "id"},
		Desc:   opts.Order == Descending,
	})
	if opts.paginated() {
		query = query.Offset(pageOffset(opts.Page, opts.limit())).Limit(opts.limit())
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.findInTx(r.db.WithContext(ctx), id)
}

func (r *crudRepository[T]) findInTx(tx *gorm.DB, id uint) (*T, error) {
	var item T
	if err := r.preloaded(tx).First(&item, id).Error; err != nil {
		return nil, notFound(err, r.entity, id)
	}
	return &item, nil
}

// exists reports whether a T row with the given id is present, reading through tx.
func exists[T any](tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// delete loads the row, runs before inside the same transaction and removes
// the row. The loaded row is returned.
func (r *crudRepository[T]) delete(ctx context.Context, id uint, before func(tx *gorm.DB, item *T) error) (*T, error) {
	var deleted *T
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		item, err := r.findInTx(tx, id)
		if err != nil {
			return err
		}
		if before != nil {
			if err := before(tx, item); err != nil {
				return err
			}
		}
		if err := tx.Delete(new(T), id).Error; err != nil {
			return err
		}
		deleted = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *crudRepository[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
