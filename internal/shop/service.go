package shop

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidShop = errors.New("name and area_id are required")
	ErrNotOwner    = errors.New("not the shop owner")
)

// ImageStore persists uploaded shop images and returns public URLs.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) Create(ctx context.Context, shop *Shop) error {
	shop.Name = strings.TrimSpace(shop.Name)
	if shop.Name == "" || shop.AreaID == "" {
		return ErrInvalidShop
	}
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	return s.repo.Create(ctx, shop)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Shop, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// DirectoryQuery is one directory page request.
type DirectoryQuery struct {
	AreaID  string
	Filter  Filter
	SortKey SortKey
	Dir     Direction
	Page    int
	PerPage int
}

// Directory lists, filters, sorts and paginates the shop directory. An
// empty area means the all-areas view with its larger page size.
func (s *Service) Directory(ctx context.Context, q DirectoryQuery) (Page, error) {
	var (
		shops []Shop
		err   error
	)
	if q.AreaID == "" {
		shops, err = s.repo.ListAll(ctx)
	} else {
		shops, err = s.repo.ListByArea(ctx, q.AreaID)
	}
	if err != nil {
		return Page{}, err
	}

	shops = ApplyFilter(shops, q.Filter)
	if q.SortKey != "" {
		shops = Sort(shops, q.SortKey, q.Dir)
	}

	perPage := q.PerPage
	if perPage <= 0 {
		if q.AreaID == "" {
			perPage = PerPageAll
		} else {
			perPage = PerPageArea
		}
	}
	return Paginate(shops, q.Page, perPage), nil
}

// UploadImages stores the images and records their URLs on the shop.
// Only the owner may attach images.
func (s *Service) UploadImages(ctx context.Context, shopID, userID string, files []UploadFile) ([]string, error) {
	ok, err := s.repo.IsOwner(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotOwner
	}

	if len(files) == 0 {
		return nil, errors.New("no files uploaded")
	}

	var urls []string
	for _, f := range files {
		key := "shops/" + shopID + "/" + uuid.New().String() + extFor(f.ContentType)
		url, err := s.images.Upload(ctx, key, f.ContentType, f.Body)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	if err := s.repo.AddImages(ctx, shopID, urls); err != nil {
		return nil, err
	}
	return urls, nil
}

type UploadFile struct {
	ContentType string
	Body        io.Reader
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// Rates returns the delivery rates applied to a cart holding items from
// the given shops: the highest delivery fee and the highest discount
// percent among them. Free-delivery shops contribute a zero fee.
func (s *Service) Rates(ctx context.Context, shopIDs []string) (decimal.Decimal, decimal.Decimal, error) {
	if len(shopIDs) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}
	shops, err := s.repo.GetByIDs(ctx, shopIDs)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	fee, pct := decimal.Zero, decimal.Zero
	for _, sh := range shops {
		if !sh.IsFree() && sh.DeliveryFee.GreaterThan(fee) {
			fee = sh.DeliveryFee
		}
		if sh.DiscountPercent.GreaterThan(pct) {
			pct = sh.DiscountPercent
		}
	}
	return fee, pct, nil
}
