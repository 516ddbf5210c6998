package service

import (
	"context"
	"errors"
	"strings"

	"bookstore-backoffice/internal/domains/customer/model"
	"bookstore-backoffice/internal/domains/customer/repository"
	"bookstore-backoffice/pkg/logger"
)

type customerService struct {
	repo repository.RepositoryInterface
}

func NewCustomerService(repo repository.RepositoryInterface) ServiceInterface {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToCustomer()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("customer created", map[string]interface{}{"customer_id": c.ID})
	return c, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *model.UpdateCustomerRequest) (*model.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.PhoneNumber = req.PhoneNumber
	c.Address = req.Address
	c.City = req.City
	c.PostalCode = req.PostalCode
	c.Country = req.Country

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, filter *model.CustomerFilter) ([]model.Customer, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *customerService) ListActiveCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListActive(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, keyword string) ([]model.Customer, error) {
	if strings.TrimSpace(keyword) == "" {
		return s.repo.ListActive(ctx)
	}
	return s.repo.Search(ctx, keyword)
}

func (s *customerService) ListCustomersByCity(ctx context.Context, city string) ([]model.Customer, error) {
	return s.repo.ListByCity(ctx, city)
}

func (s *customerService) ListCustomersByCountry(ctx context.Context, country string) ([]model.Customer, error) {
	return s.repo.ListByCountry(ctx, country)
}

func (s *customerService) DeactivateCustomer(ctx context.Context, id int64) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *customerService) ToggleCustomerStatus(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.ToggleStatus(ctx, id)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.repo.PermanentDelete(ctx, id)
}

// CreateOrGet resolves order contact details to one customer row. The
// strategies run in order and the first one that produces a row wins:
//
//  1. match by email: an existing email match is returned untouched
//  2. match by phone: the row is updated with the incoming details, since
//     the caller is the same person reachable under a new email
//  3. validated create
//  4. on a unique-constraint race, refetch by email, then phone
//  5. permissive create: insert whatever we were given rather than lose
//     the order over a malformed postcode
func (s *customerService) CreateOrGet(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error) {
	req.Normalize()

	if req.Email != "" {
		c, err := s.repo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}

	if req.PhoneNumber != nil {
		c, err := s.repo.FindByPhone(ctx, *req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if c != nil {
			req.ApplyTo(c)
			if err := s.repo.Update(ctx, c); err != nil {
				// The new email may belong to another row; keep the match
				// as it was rather than fail the order.
				if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrPhoneTaken) {
					logger.Warn("skipping customer overwrite on conflict", err)
					return s.repo.GetByID(ctx, c.ID)
				}
				return nil, err
			}
			return c, nil
		}
	}

	if err := req.Validate(); err == nil {
		c := req.ToCustomer()
		err := s.repo.Create(ctx, c)
		if err == nil {
			logger.Info("customer created during order", map[string]interface{}{"customer_id": c.ID})
			return c, nil
		}
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrPhoneTaken) {
			if c := s.refetch(ctx, req); c != nil {
				return c, nil
			}
		}
	} else {
		logger.Warn("customer details failed validation, falling back", err)
	}

	// Last resort. The row may be incomplete but the order must not be lost.
	c := req.ToCustomer()
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrPhoneTaken) {
			if c := s.refetch(ctx, req); c != nil {
				return c, nil
			}
		}
		logger.Error("customer resolution exhausted", err)
		return nil, model.ErrCustomerResolution
	}
	return c, nil
}

// refetch retries the lookups after a unique-constraint conflict: someone
// inserted the row between our lookup and our insert.
func (s *customerService) refetch(ctx context.Context, req *model.CreateCustomerRequest) *model.Customer {
	if req.Email != "" {
		if c, err := s.repo.FindByEmail(ctx, req.Email); err == nil && c != nil {
			return c
		}
	}
	if req.PhoneNumber != nil {
		if c, err := s.repo.FindByPhone(ctx, *req.PhoneNumber); err == nil && c != nil {
			return c
		}
	}
	return nil
}
