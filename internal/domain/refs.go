package domain

import "time"

// Shallow projections of entities embedded in other entities' responses.

type ClientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClientContact struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type PropertyRef struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	City *string `json:"city"`
}

type PlotRef struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Crop         *string  `json:"crop"`
	AreaHectares *float64 `json:"area_hectares"`
}

type VisitRef struct {
	ID            string      `json:"id"`
	ScheduledDate time.Time   `json:"scheduled_date"`
	Status        VisitStatus `json:"status"`
}

type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func NewClientRef(c *Client) *ClientRef {
	if c == nil {
		return nil
	}
	return &ClientRef{ID: c.ID, Name: c.Name}
}

func NewClientContact(c *Client) *ClientContact {
	if c == nil {
		return nil
	}
	return &ClientContact{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
}

func NewPropertyRef(p *Property) *PropertyRef {
	if p == nil {
		return nil
	}
	return &PropertyRef{ID: p.ID, Name: p.Name, City: p.City}
}

func NewPlotRef(p *Plot) *PlotRef {
	if p == nil {
		return nil
	}
	return &PlotRef{ID: p.ID, Name: p.Name, Crop: p.Crop, AreaHectares: p.AreaHectares}
}

func NewPlotRefs(plots []Plot) []PlotRef {
	out := make([]PlotRef, 0, len(plots))
	for i := range plots {
		out = append(out, *NewPlotRef(&plots[i]))
	}
	return out
}

func NewVisitRef(v *Visit) *VisitRef {
	if v == nil {
		return nil
	}
	return &VisitRef{ID: v.ID, ScheduledDate: v.ScheduledDate, Status: v.Status}
}

func NewProductRef(p *Product) *ProductRef {
	if p == nil {
		return nil
	}
	return &ProductRef{ID: p.ID, Name: p.Name, Type: p.Type}
}

// NamedRef is the {id, name} projection of any entity.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewPropertyName(p *Property) *NamedRef {
	if p == nil {
		return nil
	}
	return &NamedRef{ID: p.ID, Name: p.Name}
}

func NewPlotName(p *Plot) *NamedRef {
	if p == nil {
		return nil
	}
	return &NamedRef{ID: p.ID, Name: p.Name}
}
