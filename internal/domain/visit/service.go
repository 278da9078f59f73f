package visit

import (
	"context"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
)

type Service struct {
	repo *Repository
	// strict enforces the transitions table on explicit status changes
	strict bool
}

func NewService(repo *Repository, strictTransitions bool) *Service {
	return &Service{repo: repo, strict: strictTransitions}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]ListItem, error) {
	visits, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(visits))
	for _, v := range visits {
		ids = append(ids, v.ID)
	}
	counts, err := s.repo.EvaluationCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(visits))
	for _, v := range visits {
		items = append(items, ListItem{Row: newRow(v), Count: ListCount{PlotEvaluations: counts[v.ID]}})
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	v, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return newDetail(*v), nil
}

// Create schedules a visit. The property must belong to the client.
func (s *Service) Create(ctx context.Context, req *CreateRequest, actor string) (*Row, error) {
	ok, err := s.repo.ClientExists(ctx, req.ClientID.Value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClientNotFound
	}

	owner, err := s.repo.PropertyOwner(ctx, req.PropertyID.Value)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if owner != req.ClientID.Value {
		return nil, ErrPropertyMismatch
	}

	v := &domain.Visit{
		ClientID:      req.ClientID.Value,
		PropertyID:    req.PropertyID.Value,
		ScheduledDate: req.ScheduledDate.Value,
		Objective:     req.Objective.Ptr(),
		Status:        domain.VisitScheduled,
		CreatedBy:     actor,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return s.row(ctx, v.ID)
}

// Update applies the sent fields. A non-empty discussion summary always
// completes the visit, whatever status was stored or requested.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*Row, error) {
	changes := req.changes()

	if req.Status.Valid() && s.strict {
		current, err := s.repo.Status(ctx, id)
		if err != nil {
			if database.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if err := checkTransition(current, domain.VisitStatus(req.Status.Value)); err != nil {
			return nil, err
		}
	}
	if req.DiscussionSummary.Valid() {
		changes["status"] = domain.VisitDone
	}

	return s.apply(ctx, id, changes)
}

// SaveSummary records the discussion summary and marks the visit REALIZADA.
func (s *Service) SaveSummary(ctx context.Context, id string, req *SummaryRequest) (*Row, error) {
	return s.apply(ctx, id, map[string]any{
		"discussion_summary": req.DiscussionSummary.Value,
		"status":             domain.VisitDone,
	})
}

// Delete removes the visit and its evaluations. Sales orders that referenced
// it keep existing without a visit.
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

func (s *Service) apply(ctx context.Context, id string, changes map[string]any) (*Row, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return s.row(ctx, id)
}

func (s *Service) row(ctx context.Context, id string) (*Row, error) {
	v, err := s.repo.GetRow(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row := newRow(*v)
	return &row, nil
}
