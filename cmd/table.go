// =============================================================================
// SAM to Oracle Converter - Table Rendering
// =============================================================================
//
// Shared table rendering for the preview and validate commands.
//
// =============================================================================

package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ginjaninja78/SAM-to-Oracle-conversion/internal/types"
)

// renderOutputRows renders output rows as a table in import column order.
// limit caps the number of rows rendered; 0 means all.
func renderOutputRows(rows []types.OutputRow, limit int) string {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(types.OutputColumns))
	for i, col := range types.OutputColumns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		level, from, to := "", "", ""
		if row.Level != 0 {
			level = strconv.Itoa(row.Level)
			from = formatAmount(row.ThresholdFrom)
			to = formatAmount(row.ThresholdTo)
		}
		tw.AppendRow(table.Row{
			row.CostCenter,
			level,
			row.Type,
			string(row.Role),
			row.OracleID,
			from,
			to,
		})
	}

	// Right-align the numeric columns: Level and both threshold amounts.
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// renderMapping renders a detected column mapping as a two-column table.
func renderMapping(fields []string, headers []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Detected Column"})

	for i, field := range fields {
		header := headers[i]
		if header == "" {
			header = "(unmapped)"
		}
		tw.AppendRow(table.Row{field, header})
	}

	return tw.Render()
}

// formatAmount formats a threshold amount with two decimal places.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
