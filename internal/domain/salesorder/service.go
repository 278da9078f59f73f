package salesorder

import (
	"context"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
)

type Service struct {
	repo   *Repository
	strict bool
}

func NewService(repo *Repository, strictTransitions bool) *Service {
	return &Service{repo: repo, strict: strictTransitions}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]ListItem, error) {
	orders, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, newListItem(o))
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	o, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newDetail(*o), nil
}

// Create opens an order for the client, optionally linked to one of the
// client's visits. Status defaults to COTAÇÃO.
func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*Row, error) {
	ok, err := s.repo.ClientExists(ctx, req.ClientID.Value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClientNotFound
	}

	if req.VisitID.Valid() {
		owner, err := s.repo.VisitClient(ctx, req.VisitID.Value)
		if err != nil {
			if database.IsNotFound(err) {
				return nil, ErrVisitNotFound
			}
			return nil, err
		}
		if owner != req.ClientID.Value {
			return nil, ErrVisitMismatch
		}
	}

	if err := s.checkProducts(ctx, req.OrderItems); err != nil {
		return nil, err
	}

	status := domain.OrderQuote
	if req.Status.Valid() {
		status = domain.OrderStatus(req.Status.Value)
	}

	o := &domain.SalesOrder{
		ClientID:   req.ClientID.Value,
		VisitID:    req.VisitID.Ptr(),
		Status:     status,
		CreatedBy:  actor,
		OrderItems: toItems(req.OrderItems),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.row(ctx, o.ID)
}

// Update sets the status and replaces the items when they are sent.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*Row, error) {
	changes := map[string]any{}
	req.Status.Patch(changes, "status")

	if req.Status.Valid() && s.strict {
		current, err := s.repo.Status(ctx, id)
		if err != nil {
			if database.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if err := checkTransition(current, domain.OrderStatus(req.Status.Value)); err != nil {
			return nil, err
		}
	}

	if err := s.checkProducts(ctx, req.OrderItems); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, changes, toItems(req.OrderItems)); err != nil {
		switch {
		case database.IsNotFound(err):
			return nil, ErrNotFound
		case database.IsForeignKeyViolation(err):
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.row(ctx, id)
}

// Delete removes the order and its items.
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

func (s *Service) checkProducts(ctx context.Context, items []ItemRequest) error {
	ids := productIDs(items)
	if len(ids) == 0 {
		return nil
	}
	n, err := s.repo.CountProducts(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return ErrProductNotFound
	}
	return nil
}

func (s *Service) row(ctx context.Context, id string) (*Row, error) {
	o, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newRow(*o), nil
}
