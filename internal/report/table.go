// Package report formats the crime table and derived statistics for the
// terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/statlens/crimelens/internal/dataset"
	"github.com/statlens/crimelens/internal/stats"
)

const rateNote = "Note: Crime Rate = crimes per lakh (100,000) residents"

// DataTable renders the full table with per-state totals and rates.
// rates must be the entries computed from the same table, in table order.
func DataTable(crimeTable dataset.Table, rates []stats.RateEntry) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	header := table.Row{"State"}
	for _, c := range dataset.Categories() {
		header = append(header, string(c))
	}

	header = append(header, "Population (Lakhs)", "Total Crimes", "Crime Rate")
	w.AppendHeader(header)

	for i, rec := range crimeTable {
		row := table.Row{rec.Name}
		for _, c := range dataset.Categories() {
			row = append(row, humanize.Comma(int64(rec.Counts[c])))
		}

		row = append(row,
			fmt.Sprintf("%.1f", rec.PopulationLakhs),
			humanize.Comma(int64(rates[i].TotalCrimes)),
			fmt.Sprintf("%.2f", rates[i].RatePerLakh),
		)
		w.AppendRow(row)
	}

	return w.Render() + "\n" + rateNote
}

// SummaryBlock renders the descriptive statistics with the extreme states
// highlighted.
func SummaryBlock(summary stats.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "States analyzed:  %d\n", summary.States)
	fmt.Fprintf(&b, "Total crimes:     %s\n", humanize.Comma(int64(summary.TotalCrimes)))
	fmt.Fprintf(&b, "Mean rate:        %.2f\n", summary.MeanRate)
	fmt.Fprintf(&b, "Median rate:      %.2f\n", summary.MedianRate)
	fmt.Fprintf(&b, "Std dev:          %.2f\n", summary.StdDevRate)
	fmt.Fprintf(&b, "Rate range:       %.2f to %.2f\n", summary.MinRate, summary.MaxRate)
	fmt.Fprintf(&b, "Highest rate:     %s\n", color.New(color.FgRed, color.Bold).Sprint(summary.HighestState))
	fmt.Fprintf(&b, "Safest state:     %s\n", color.New(color.FgGreen, color.Bold).Sprint(summary.LowestState))

	return b.String()
}

// CategoryBlock renders category totals with each category's share.
func CategoryBlock(totals stats.CategoryTotals) string {
	shares := totals.Shares()

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Category", "Total Cases", "Share"})

	for _, c := range dataset.Categories() {
		w.AppendRow(table.Row{
			string(c),
			humanize.Comma(int64(totals[c])),
			fmt.Sprintf("%.1f%%", shares[c]*100),
		})
	}

	totalShare := 0.0
	for _, share := range shares {
		totalShare += share
	}

	w.AppendFooter(table.Row{"All", humanize.Comma(int64(totals.GrandTotal())), fmt.Sprintf("%.1f%%", totalShare*100)})

	return w.Render()
}
