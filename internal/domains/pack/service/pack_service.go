package service

import (
	"context"

	"bookstore-backoffice/internal/domains/pack/model"
	"bookstore-backoffice/internal/domains/pack/repository"
	"bookstore-backoffice/pkg/logger"
)

type ServiceInterface interface {
	CreatePack(ctx context.Context, req *model.CreatePackRequest) (*model.Pack, error)
	UpdatePack(ctx context.Context, id int64, req *model.UpdatePackRequest) (*model.Pack, error)
	GetPack(ctx context.Context, id int64) (*model.Pack, error)
	ListPacks(ctx context.Context) ([]model.Pack, error)
	ListActivePacks(ctx context.Context) ([]model.Pack, error)
	ListFeaturedPacks(ctx context.Context) ([]model.Pack, error)
	ListPacksByCategory(ctx context.Context, category string) ([]model.Pack, error)
	ListPackCategories(ctx context.Context) ([]string, error)
	SearchPacks(ctx context.Context, keyword string) ([]model.Pack, error)
	DeactivatePack(ctx context.Context, id int64) error
	ToggleFeatured(ctx context.Context, id int64) (*model.Pack, error)
}

type packService struct {
	repo repository.RepositoryInterface
}

func NewPackService(repo repository.RepositoryInterface) ServiceInterface {
	return &packService{repo: repo}
}

func (s *packService) CreatePack(ctx context.Context, req *model.CreatePackRequest) (*model.Pack, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPack()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("pack created", map[string]interface{}{"pack_id": p.ID, "name": p.Name})
	return p, nil
}

func (s *packService) UpdatePack(ctx context.Context, id int64, req *model.UpdatePackRequest) (*model.Pack, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Image = req.Image
	p.Category = req.Category
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *packService) GetPack(ctx context.Context, id int64) (*model.Pack, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *packService) ListPacks(ctx context.Context) ([]model.Pack, error) {
	return s.repo.ListAll(ctx)
}

func (s *packService) ListActivePacks(ctx context.Context) ([]model.Pack, error) {
	return s.repo.ListActive(ctx)
}

func (s *packService) ListFeaturedPacks(ctx context.Context) ([]model.Pack, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *packService) ListPacksByCategory(ctx context.Context, category string) ([]model.Pack, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *packService) ListPackCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *packService) SearchPacks(ctx context.Context, keyword string) ([]model.Pack, error) {
	if keyword == "" {
		return s.repo.ListActive(ctx)
	}
	return s.repo.Search(ctx, keyword)
}

func (s *packService) DeactivatePack(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *packService) ToggleFeatured(ctx context.Context, id int64) (*model.Pack, error) {
	return s.repo.ToggleFeatured(ctx, id)
}
