package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sajukit/internal/rules"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// tablesCmd prints the reference symbol tables
var tablesCmd = &cobra.Command{
	Use:       "tables [stems|branches|relations|tengods|palaces]",
	Short:     "Print the reference symbol tables",
	Long:      `Prints the fixed symbol tables the engine evaluates against. With no argument, prints all of them.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"stems", "branches", "relations", "tengods", "palaces"},
	RunE:      runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	which := ""
	if len(args) == 1 {
		which = args[0]
	}

	out := cmd.OutOrStdout()
	printed := false

	if which == "" || which == "stems" {
		fmt.Fprint(out, stemsTable())
		printed = true
	}
	if which == "" || which == "branches" {
		fmt.Fprint(out, branchesTable())
		printed = true
	}
	if which == "" || which == "relations" {
		fmt.Fprint(out, relationsTable())
		printed = true
	}
	if which == "" || which == "tengods" {
		fmt.Fprint(out, tenGodsTable())
		printed = true
	}
	if which == "" || which == "palaces" {
		fmt.Fprint(out, palacesTable())
		printed = true
	}

	if !printed {
		return fmt.Errorf("unknown table %q (valid: stems, branches, relations, tengods, palaces)", which)
	}
	return nil
}

func stemsTable() string {
	rows := make([][]string, 0, 10)
	for _, name := range rules.StemNames() {
		s, err := rules.StemByName(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{s.Name, string(s.Element), string(s.Polarity)})
	}
	return renderTable("천간 (10 Heavenly Stems)", []string{"천간", "오행", "음양"}, rows)
}

func branchesTable() string {
	rows := make([][]string, 0, 12)
	for _, name := range rules.BranchNames() {
		b, err := rules.BranchByName(name)
		if err != nil {
			continue
		}
		hidden := make([]string, len(b.Hidden))
		for i, h := range b.Hidden {
			hidden[i] = h.Name
		}
		rows = append(rows, []string{b.Name, string(b.Element), string(b.Polarity), strings.Join(hidden, " ")})
	}
	return renderTable("지지 (12 Earthly Branches)", []string{"지지", "오행", "음양", "지장간"}, rows)
}

func relationsTable() string {
	var rows [][]string
	for _, kind := range rules.RelationKinds() {
		for _, pair := range rules.Pairs(kind) {
			rows = append(rows, []string{
				string(kind), kind.Hanja(),
				pair[0] + "·" + pair[1], kind.Meaning(),
			})
		}
	}
	for _, tr := range rules.Triads() {
		rows = append(rows, []string{
			"삼합", "三合",
			strings.Join(tr.Branches[:], "·"),
			string(tr.Element) + " 기운 극대화",
		})
	}
	return renderTable("지지 관계 (Branch Relations)", []string{"관계", "한자", "구성", "의미"}, rows)
}

func tenGodsTable() string {
	rows := make([][]string, 0, 10)
	for _, name := range rules.TenGodNames() {
		info, ok := rules.TenGodByName(name)
		if !ok {
			continue
		}
		rows = append(rows, []string{info.Name, info.Description})
	}
	return renderTable("십신 (Ten Gods)", []string{"십신", "의미"}, rows)
}

func palacesTable() string {
	rows := make([][]string, 0, 4)
	for _, key := range rules.PalaceKeys() {
		p, ok := rules.PalaceByKey(key)
		if !ok {
			continue
		}
		rows = append(rows, []string{p.Key, p.LifeStage, p.Kin, p.Meaning})
	}
	return renderTable("궁위 (Palaces)", []string{"궁위", "시기", "육친", "상징"}, rows)
}

// renderTable renders a titled column-aligned table.
func renderTable(title string, headers []string, rows [][]string) string {
	var sb strings.Builder

	sb.WriteString(tableTitleStyle.Render(title))
	sb.WriteString("\n")

	// Column widths from the widest cell
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	for i, h := range headers {
		sb.WriteString(tableHeaderStyle.Width(colWidths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(tableMutedStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(tableMutedStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(tableCellStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(tableMutedStyle.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
