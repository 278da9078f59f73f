package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"agroconsult/internal/domain"
)

const (
	reportVisitSheet       = "Visita"
	reportEvaluationsSheet = "Avaliações"
)

var evaluationColumns = []any{
	"Talhão",
	"Cultura",
	"Área (ha)",
	"Estádio fenológico",
	"Praga/Doença",
	"Nível de infestação",
	"Plantas daninhas",
	"Recomendação técnica",
	"Mídias",
}

// Report builds the technical visit report workbook. The caller closes it.
func (s *Service) Report(ctx context.Context, id string) (*excelize.File, *Detail, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	f, err := buildReport(d)
	if err != nil {
		return nil, nil, err
	}
	return f, d, nil
}

func buildReport(d *Detail) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportVisitSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(reportEvaluationsSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := writeVisitSheet(f, d); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("visit sheet: %w", err)
	}
	if err := writeEvaluationsSheet(f, d); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("evaluations sheet: %w", err)
	}
	return f, nil
}

func writeVisitSheet(f *excelize.File, d *Detail) error {
	var client, phone, email, property, city string
	if d.Client != nil {
		client, phone, email = d.Client.Name, deref(d.Client.Phone), deref(d.Client.Email)
	}
	if d.Property != nil {
		property, city = d.Property.Name, deref(d.Property.City)
	}

	rows := [][]any{
		{"Relatório Técnico de Visita"},
		{},
		{"Cliente", client},
		{"Telefone", phone},
		{"Email", email},
		{"Propriedade", property},
		{"Cidade", city},
		{"Data", formatDate(d.ScheduledDate)},
		{"Status", string(d.Status)},
		{"Objetivo", deref(d.Objective)},
		{"Resumo da discussão", deref(d.DiscussionSummary)},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportVisitSheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(reportVisitSheet, "A1", fmt.Sprintf("A%d", len(rows)), bold); err != nil {
		return err
	}
	return f.SetColWidth(reportVisitSheet, "A", "B", 28)
}

func writeEvaluationsSheet(f *excelize.File, d *Detail) error {
	if err := f.SetSheetRow(reportEvaluationsSheet, "A1", &evaluationColumns); err != nil {
		return err
	}

	plots := map[string]domain.PlotRef{}
	if d.Property != nil {
		for _, p := range d.Property.Plots {
			plots[p.ID] = p
		}
	}

	for i, e := range d.PlotEvaluations {
		plot := plots[e.PlotID]
		name := plot.Name
		if e.Plot != nil {
			name = e.Plot.Name
		}
		var area any = ""
		if plot.AreaHectares != nil {
			area = *plot.AreaHectares
		}

		row := []any{
			name,
			deref(plot.Crop),
			area,
			deref(e.PhenologicalStage),
			deref(e.PestOrDisease),
			deref(e.InfestationLevel),
			deref(e.Weeds),
			deref(e.TechnicalRecommendation),
			len(e.Media),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportEvaluationsSheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(reportEvaluationsSheet, "A1", "I1", bold); err != nil {
		return err
	}
	return f.SetColWidth(reportEvaluationsSheet, "A", "I", 22)
}

func reportFilename(d *Detail) string {
	return fmt.Sprintf("visita-%s-%s.xlsx", d.ScheduledDate.UTC().Format("2006-01-02"), d.ID[:min(8, len(d.ID))])
}

func formatDate(t time.Time) string {
	return t.UTC().Format("02/01/2006 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
