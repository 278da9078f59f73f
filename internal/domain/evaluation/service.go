package evaluation

import (
	"context"

	"agroconsult/internal/database"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Row, error) {
	evals, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(evals))
	for _, e := range evals {
		rows = append(rows, newRow(e))
	}
	return rows, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	e, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newDetail(*e), nil
}

// Create records an evaluation of a plot located on the visited property.
func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*Row, error) {
	visitProperty, err := s.repo.VisitProperty(ctx, req.VisitID.Value)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}

	plotProperty, err := s.repo.PlotProperty(ctx, req.PlotID.Value)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPlotNotFound
		}
		return nil, err
	}
	if plotProperty != visitProperty {
		return nil, ErrPlotMismatch
	}

	e := req.toModel(actor)
	if err := s.repo.Create(ctx, e); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	return s.row(ctx, e.ID)
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

// Delete removes the evaluation and its media rows.
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
	e, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row := newRow(*e)
	return &row, nil
}
