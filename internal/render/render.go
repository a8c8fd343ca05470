// Package render turns engine output into markdown for the terminal.
package render

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"cashbook/internal/currency"
	"cashbook/internal/domain"
	"cashbook/internal/usecase"
)

// LedgerMarkdown renders the denomination grid with totals and the reconciliation line.
func LedgerMarkdown(items []domain.LineItem, totals domain.Totals, tally string, f *currency.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cash Count")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Note", "Count", "Amount"},
		Rows:      [][]string{},
	}
	for _, item := range items {
		count := item.CountText
		if count == "" {
			count = "-"
		}
		table.Rows = append(table.Rows, []string{item.Denomination.Label, count, f.Display(item.LineTotal)})
	}
	doc.Table(table)

	doc.BulletList(
		fmt.Sprintf("%s %s", md.Bold("Total:"), f.Display(totals.TotalAmount)),
		fmt.Sprintf("%s %d", md.Bold("Notes:"), totals.TotalNotes),
		fmt.Sprintf("%s %s", md.Bold("In words:"), totals.AmountInWords),
	)

	if tally != "" {
		doc.H2("Reconciliation")
		doc.BulletList(
			fmt.Sprintf("%s %s", md.Bold("Tally:"), f.Display(usecase.ParseCount(tally))),
			fmt.Sprintf("%s %s %s", md.Bold("Difference:"), totals.Direction.Label(), f.Display(totals.AbsDifference())),
		)
	}

	return doc.String()
}

// HistoryMarkdown renders the history log as a table, most recent first.
func HistoryMarkdown(entries []domain.HistoryEntry, f *currency.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")
	if len(entries) == 0 {
		doc.PlainText("No saved counts yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"ID", "Saved", "Total", "Notes", "Tally"},
		Rows:      [][]string{},
	}
	for _, e := range entries {
		tally := "-"
		if e.Tally != "" {
			tally = f.Display(usecase.ParseCount(e.Tally))
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Timestamp,
			f.Display(e.TotalAmount),
			fmt.Sprintf("%d", e.TotalNotes),
			tally,
		})
	}
	doc.Table(table)

	return doc.String()
}

// RecipeMarkdown renders the scaled recipe card.
func RecipeMarkdown(cups int, ingredients []domain.IngredientQuantity, extras []string, steps []domain.Step) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	unit := "cups"
	if cups == 1 {
		unit = "cup"
	}
	doc.H1(fmt.Sprintf("Tea for %d %s", cups, unit))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ingredient", "Quantity", "Metric"},
		Rows:      [][]string{},
	}
	for _, q := range ingredients {
		name := q.Name
		if q.Note != "" {
			name = fmt.Sprintf("%s (%s)", name, q.Note)
		}
		table.Rows = append(table.Rows, []string{
			name,
			fmt.Sprintf("%s %s", q.QuantityText(), q.Unit.Abbrev()),
			fmt.Sprintf("%s %s", q.ConvertedText(), q.ConvertedUnit.Abbrev()),
		})
	}
	doc.Table(table)

	if len(extras) > 0 {
		doc.H2("Optional")
		doc.BulletList(extras...)
	}

	doc.H2("Steps")
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.Instruction
		if s.Timer != nil {
			lines[i] += " " + md.Italic(fmt.Sprintf("(timer: cashbook timer -d %s)", s.Timer.Duration))
		}
	}
	doc.OrderedList(lines...)

	return doc.String()
}
