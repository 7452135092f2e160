// Package catalog owns persisted Product records. All access to the
// products table goes through Repository; views hold request-scoped
// copies only.
package catalog

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/saiswarup426503/amazon/internal/domain"
	"github.com/saiswarup426503/amazon/pkg/common"
)

// ErrNotFound marks operations that target an id absent from the store
var ErrNotFound = errors.New("product not found")

// ErrBadImageIndex marks image removals outside the current sequence
var ErrBadImageIndex = errors.New("image index out of range")

const (
	readRetries    = 3
	readRetryDelay = 100 * time.Millisecond
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// withReadRetry retries transient read failures a bounded number of
// times. Mutations are never retried, a duplicate create or delete is
// worse than a surfaced error.
func withReadRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < readRetries; attempt++ {
		err = fn()
		if err == nil || errors.Is(err, gorm.ErrRecordNotFound) || ctx.Err() != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readRetryDelay):
		}
	}
	return err
}

// Create assigns a fresh id and persists the full record. The caller's
// struct is updated in place with the stored state.
func (r *Repository) Create(ctx context.Context, p *domain.Product) error {
	now := time.Now()
	p.ID = common.UUIDint64()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Images == nil {
		p.Images = domain.ImageList{}
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	return nil
}

// Get returns one product by id
func (r *Repository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}

// Replace performs a full-record overwrite of an existing product. The
// record must already exist; Replace never creates one. Identity and
// creation time survive the overwrite.
func (r *Repository) Replace(ctx context.Context, id int64, p *domain.Product) (*domain.Product, error) {
	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ID = current.ID
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now()
	if p.Images == nil {
		p.Images = domain.ImageList{}
	}
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, errors.Wrap(err, "replace product")
	}
	return p, nil
}

// Delete removes a product permanently. Deleting an absent id surfaces
// ErrNotFound rather than succeeding silently.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every product, most recently created first
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&products).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

// ListVisible returns the visitor-facing catalog: products whose status
// and publish date permit display at the given moment, newest first.
// Ordering follows List; no contractual sort beyond that is promised.
func (r *Repository) ListVisible(ctx context.Context, now time.Time) ([]domain.Product, error) {
	var products []domain.Product
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).
			Where("status = ? AND publish_date <= ?", domain.StatusPublished, now).
			Order("created_at DESC, id DESC").
			Find(&products).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list visible products")
	}
	return products, nil
}

// AppendImages adds a batch of already-encoded images to the end of the
// product's sequence. The caller guarantees the batch is complete; a
// failed pipeline run never reaches this point.
func (r *Repository) AppendImages(ctx context.Context, id int64, encoded []string) (*domain.Product, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, encoded...)
	p.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, errors.Wrap(err, "append images")
	}
	return p, nil
}

// RemoveImage drops the image at the given position and re-indexes the
// remainder. Removing position 0 implicitly promotes the next image to
// main; there is no separate main-image flag.
func (r *Repository) RemoveImage(ctx context.Context, id int64, index int) (*domain.Product, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.Images) {
		return nil, ErrBadImageIndex
	}
	p.Images = append(p.Images[:index], p.Images[index+1:]...)
	p.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, errors.Wrap(err, "remove image")
	}
	return p, nil
}

// CountByStatus returns catalog totals per lifecycle state
func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := withReadRetry(ctx, func() error {
		return r.db.WithContext(ctx).Model(&domain.Product{}).
			Select("status, count(*) as total").
			Group("status").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "count products")
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Status] = rw.Total
	}
	return out, nil
}
