package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnmoth/pkg/moth"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSummary shows counters of a run as a table.
func renderSummary(sum moth.Summary) string {
	rows := []struct {
		name  string
		value int
	}{
		{"Taxon rows", sum.TaxonRows},
		{"Moths", sum.Moths},
		{"Butterflies", sum.Butterflies},
		{"Synonyms", sum.Synonyms},
		{"Unnamed synonyms", sum.UnnamedSynonyms},
		{"Dangling synonyms", sum.DanglingSynonyms},
		{"Misapplied", sum.Misapplied},
		{"Irrelevant", sum.Irrelevant},
		{"Duplicates", sum.Duplicates},
		{"Malformed rows", sum.MalformedRows},
		{"Repair failures", sum.RepairFailures},
		{"Bad entries", sum.BadEntries},
		{"Auxiliary malformed rows", sum.AuxMalformedRows},
		{"Blacklist fragments", sum.BlacklistSize},
		{"Collisions", sum.CollisionSize},
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Run " + sum.RunID)
	tw.AppendHeader(table.Row{"Counter", "Value"})
	for _, v := range rows {
		tw.AppendRow(table.Row{v.name, humanize.Comma(int64(v.value))})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
