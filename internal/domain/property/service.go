package property

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
	props, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(props))
	for _, p := range props {
		ids = append(ids, p.ID)
	}
	plots, visits, err := s.repo.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(props))
	for _, p := range props {
		items = append(items, ListItem{
			Row:   newRow(p),
			Count: Count{Plots: plots[p.ID], Visits: visits[p.ID]},
		})
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	p, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newDetail(*p), nil
}

func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*Row, error) {
	ok, err := s.repo.ClientExists(ctx, req.ClientID.Value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClientNotFound
	}

	p := &domain.Property{
		ClientID:  req.ClientID.Value,
		Name:      req.Name.Value,
		City:      req.City.Ptr(),
		CreatedBy: actor,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return s.row(ctx, p.ID)
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*Row, error) {
	updated, err := s.repo.Update(ctx, id, req.changes())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return s.row(ctx, id)
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

func (s *Service) row(ctx context.Context, id string) (*Row, error) {
	p, err := s.repo.GetWithClient(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row := newRow(*p)
	return &row, nil
}
