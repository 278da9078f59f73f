package client

import (
	"context"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]ListItem, error) {
	clients, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}
	visits, orders, err := s.repo.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(clients))
	for _, c := range clients {
		items = append(items, newListItem(c, visits, orders))
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	c, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	orderIDs := make([]string, 0, len(c.SalesOrders))
	for _, o := range c.SalesOrders {
		orderIDs = append(orderIDs, o.ID)
	}
	counts, err := s.repo.OrderItemCounts(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	return newDetail(*c, counts), nil
}

func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*domain.Client, error) {
	c := req.toModel(actor)
	if err := s.repo.Create(ctx, c); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCpfCnpjExists
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*domain.Client, error) {
	if _, err := s.getByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, req.changes()); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrCpfCnpjExists
		}
		return nil, err
	}
	return s.getByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) getByID(ctx context.Context, id string) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
