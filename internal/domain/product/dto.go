package product

import (
	"slices"
	"strings"

	"agroconsult/internal/domain"
	"agroconsult/internal/pkg/pagination"
	"agroconsult/internal/pkg/validator"
)

// Types are the known product types. They are enforced only when the
// service runs with strict types; otherwise type is free text.
var Types = []string{
	domain.ProductInseticida,
	domain.ProductFungicida,
	domain.ProductHerbicida,
	domain.ProductFertilizante,
	domain.ProductSemente,
}

type CreateRequest struct {
	Name             validator.String `json:"name" validate:"required,max=200"`
	Type             validator.String `json:"type" validate:"required,max=100"`
	ActiveIngredient validator.String `json:"active_ingredient" validate:"omitempty,max=200"`

	strictTypes bool
}

func (r *CreateRequest) Check(errs validator.Errors) { checkType(r.Type, r.strictTypes, errs) }

type UpdateRequest struct {
	Name             validator.String `json:"name" input:"nonnull" validate:"omitempty,max=200"`
	Type             validator.String `json:"type" input:"nonnull" validate:"omitempty,max=100"`
	ActiveIngredient validator.String `json:"active_ingredient" validate:"omitempty,max=200"`

	strictTypes bool
}

func (r *UpdateRequest) Check(errs validator.Errors) { checkType(r.Type, r.strictTypes, errs) }

func checkType(t validator.String, strict bool, errs validator.Errors) {
	if !strict || !t.Valid() || slices.Contains(Types, t.Value) {
		return
	}
	errs.Add("type", "must be one of: "+strings.Join(Types, ", "))
}

func (r *UpdateRequest) changes() map[string]any {
	m := map[string]any{}
	r.Name.Patch(m, "name")
	r.Type.Patch(m, "type")
	r.ActiveIngredient.Patch(m, "active_ingredient")
	return m
}

type ListFilter struct {
	Type   string
	Search string
	Page   pagination.Params
}
