package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Product lifecycle states. The set is flat: an operator may move a
// product from any state to any other, and nothing in the system
// promotes Scheduled to Published automatically.
const (
	StatusDraft     = "Draft"
	StatusScheduled = "Scheduled"
	StatusPublished = "Published"
)

// ParseStatus normalizes a status label, defaulting to Draft
func ParseStatus(s string) (string, error) {
	switch strings.TrimSpace(s) {
	case "", StatusDraft:
		return StatusDraft, nil
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusPublished:
		return StatusPublished, nil
	default:
		return "", fmt.Errorf("unknown product status %q", s)
	}
}

// ImageList is an ordered sequence of inline-encoded images persisted as a
// JSON column. Index 0 is always the main display image.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return jsoniter.MarshalToString(l)
}

func (l *ImageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}
		return nil
	case []byte:
		return jsoniter.Unmarshal(v, l)
	case string:
		return jsoniter.UnmarshalFromString(v, l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", src)
	}
}

// Product represents a single affiliate catalog listing
type Product struct {
	ID            int64     `gorm:"primaryKey" json:"id,string"`
	Title         string    `gorm:"index" json:"title"`
	Price         string    `gorm:"size:64" json:"price"`
	Description   string    `json:"description"`
	Rating        float64   `json:"rating"`
	ReviewSummary string    `json:"reviewSummary"`
	Images        ImageList `gorm:"type:text" json:"images"`
	AffiliateLink string    `gorm:"size:2048" json:"affiliateLink"`
	Status        string    `gorm:"size:32;index" json:"status"`
	PublishDate   time.Time `json:"publishDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// Visible reports whether the product belongs in the public catalog at
// the given moment. Only the Published label combined with an elapsed
// publish date yields visibility; a Published product dated in the
// future stays hidden, and Draft/Scheduled stay hidden regardless of
// their date.
func (p *Product) Visible(now time.Time) bool {
	return p.Status == StatusPublished && !p.PublishDate.After(now)
}

// MainImage returns the primary display image, empty when none uploaded
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
