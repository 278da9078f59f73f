package product

import (
	"context"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
)

type Service struct {
	repo        *Repository
	strictTypes bool
}

// NewService builds the product service. With strictTypes only the known
// Types are accepted.
func NewService(repo *Repository, strictTypes bool) *Service {
	return &Service{repo: repo, strictTypes: strictTypes}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*domain.Product, error) {
	p := &domain.Product{
		Name:             req.Name.Value,
		Type:             req.Type.Value,
		ActiveIngredient: req.ActiveIngredient.Ptr(),
		CreatedBy:        actor,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrNameExists
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, req.changes())
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrNameExists
		}
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete refuses to remove a product that still appears on an order.
func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.repo.ItemCount(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrInUse
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
