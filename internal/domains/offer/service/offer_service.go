package service

import (
	"context"
	"time"

	"bookstore-backoffice/internal/domains/offer/model"
	"bookstore-backoffice/internal/domains/offer/repository"
	"bookstore-backoffice/pkg/logger"
)

type ServiceInterface interface {
	CreateOffer(ctx context.Context, req *model.CreateOfferRequest) (*model.DailyOffer, error)
	UpdateOffer(ctx context.Context, id int64, req *model.UpdateOfferRequest) (*model.DailyOffer, error)
	GetOffer(ctx context.Context, id int64) (*model.DailyOffer, error)
	DeleteOffer(ctx context.Context, id int64) error
	ListOffers(ctx context.Context) ([]model.DailyOffer, error)
	ListActiveOffers(ctx context.Context) ([]model.DailyOffer, error)
	ListCurrentOffers(ctx context.Context) ([]model.DailyOffer, error)
	ListOffersByBook(ctx context.Context, bookID int64) ([]model.DailyOffer, error)
	ListOffersByPack(ctx context.Context, packID int64) ([]model.DailyOffer, error)
	DeactivateExpiredOffers(ctx context.Context) (int64, error)
}

type offerService struct {
	repo repository.RepositoryInterface
}

func NewOfferService(repo repository.RepositoryInterface) ServiceInterface {
	return &offerService{repo: repo}
}

func (s *offerService) CreateOffer(ctx context.Context, req *model.CreateOfferRequest) (*model.DailyOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o := req.ToOffer()
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	logger.Info("offer created", map[string]interface{}{"offer_id": o.ID, "title": o.Title})
	return o, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, id int64, req *model.UpdateOfferRequest) (*model.DailyOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Title = req.Title
	o.Description = req.Description
	o.DiscountPercent = req.DiscountPercent
	o.StartDate = req.StartDate
	o.EndDate = req.EndDate
	o.BookID = req.BookID
	o.PackID = req.PackID
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *offerService) GetOffer(ctx context.Context, id int64) (*model.DailyOffer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *offerService) DeleteOffer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *offerService) ListOffers(ctx context.Context) ([]model.DailyOffer, error) {
	return s.repo.ListAll(ctx)
}

func (s *offerService) ListActiveOffers(ctx context.Context) ([]model.DailyOffer, error) {
	return s.repo.ListActive(ctx)
}

func (s *offerService) ListCurrentOffers(ctx context.Context) ([]model.DailyOffer, error) {
	return s.repo.ListCurrent(ctx, time.Now().UTC())
}

func (s *offerService) ListOffersByBook(ctx context.Context, bookID int64) ([]model.DailyOffer, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *offerService) ListOffersByPack(ctx context.Context, packID int64) ([]model.DailyOffer, error) {
	return s.repo.ListByPack(ctx, packID)
}

func (s *offerService) DeactivateExpiredOffers(ctx context.Context) (int64, error) {
	count, err := s.repo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("expired offers deactivated", map[string]interface{}{"count": count})
	}
	return count, nil
}
