package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/platefit/platefit/internal/mealplans"
)

// Generator renders a day plan into a one-page PDF.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePlanPDF renders the plan with its per-meal breakdown.
func (g *Generator) GeneratePlanPDF(profileName string, plan *mealplans.PlanDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Daily Meal Plan")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Profile: %s", profileName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Diet: %s", plan.Diet))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", plan.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Day totals: %.0f kcal  |  P %.0f g  C %.0f g  F %.0f g",
		plan.CaloriesKcal, plan.ProteinG, plan.CarbsG, plan.FatG))
	pdf.Ln(10)

	for _, meal := range plan.Meals {
		pdf.SetFont("Arial", "B", 12)
		title := meal.Name
		if meal.IsFree {
			title += " (free meal)"
		}
		pdf.Cell(0, 8, title)
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%.0f kcal  |  P %.1f g  C %.1f g  F %.1f g",
			meal.CaloriesKcal, meal.ProteinG, meal.CarbsG, meal.FatG))
		pdf.Ln(6)

		if meal.IsFree {
			pdf.Cell(0, 6, "Reserved budget, eat whatever you like within it.")
			pdf.Ln(8)
			continue
		}

		g.drawEntriesTable(pdf, meal.Entries)

		if !meal.Converged {
			pdf.SetFont("Arial", "I", 9)
			pdf.Cell(0, 5, "Note: closest achievable fit, outside the usual tolerance.")
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) drawEntriesTable(pdf *gofpdf.Fpdf, entries []mealplans.MealFoodEntry) {
	colWidths := []float64{62, 28, 24, 22, 22, 22}
	headers := []string{"Food", "Servings", "kcal", "P (g)", "C (g)", "F (g)"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, e := range entries {
		label := e.Name
		if e.ServingLabel != "" {
			label = fmt.Sprintf("%s (%s)", e.Name, e.ServingLabel)
		}
		pdf.CellFormat(colWidths[0], 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.2f", e.Servings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, fmt.Sprintf("%.0f", e.CaloriesKcal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.1f", e.ProteinG), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%.1f", e.CarbsG), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%.1f", e.FatG), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}
