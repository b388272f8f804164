package rules

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
)

//go:embed audit.mg
var auditRules string

// Violation is one derived integrity defect in the authored tables.
type Violation struct {
	Predicate string
	Args      []string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s(%s)", v.Predicate, strings.Join(v.Args, ", "))
}

// AuditReport is the result of one table audit run.
type AuditReport struct {
	Violations []Violation
}

// Clean reports whether the audit derived zero violations.
func (r *AuditReport) Clean() bool { return len(r.Violations) == 0 }

// Audit renders the authored symbol tables as Datalog facts, evaluates the
// embedded audit rules over them, and collects every derived violation_*
// fact. The engine never consults the audit at analysis time; it exists so
// the table invariants (disjoint relation sets, total ten-god table, branch
// principal stems, known elements) are re-derived from the data instead of
// merely asserted.
func Audit() (*AuditReport, error) {
	program := auditRules + "\n" + renderFacts()

	unit, err := parse.Unit(strings.NewReader(program))
	if err != nil {
		return nil, fmt.Errorf("failed to parse audit program: %w", err)
	}
	info, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze audit program: %w", err)
	}

	store := factstore.NewSimpleInMemoryStore()
	if _, err := engine.EvalProgramWithStats(info, store); err != nil {
		return nil, fmt.Errorf("failed to evaluate audit program: %w", err)
	}

	report := &AuditReport{}
	for sym := range info.Decls {
		if !strings.HasPrefix(sym.Symbol, "violation_") {
			continue
		}
		err := store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
			args := make([]string, len(a.Args))
			for i, arg := range a.Args {
				args[i] = termString(arg)
			}
			report.Violations = append(report.Violations, Violation{Predicate: sym.Symbol, Args: args})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read %s facts: %w", sym.Symbol, err)
		}
	}

	sort.Slice(report.Violations, func(i, j int) bool {
		return report.Violations[i].String() < report.Violations[j].String()
	})
	return report, nil
}

func termString(term ast.BaseTerm) string {
	if c, ok := term.(ast.Constant); ok {
		switch c.Type {
		case ast.NameType, ast.StringType:
			return c.Symbol
		}
	}
	return term.String()
}

// renderFacts serializes the package tables as Datalog facts.
func renderFacts() string {
	var b strings.Builder

	for _, e := range []Element{Wood, Fire, Earth, Metal, Water} {
		fmt.Fprintf(&b, "element(%q).\n", e)
	}
	for _, p := range []Polarity{Yang, Yin} {
		fmt.Fprintf(&b, "polarity(%q).\n", p)
	}
	for _, r := range ElementRelations() {
		fmt.Fprintf(&b, "elem_relation(%q).\n", r)
	}
	fmt.Fprintf(&b, "polarity_match(%q).\npolarity_match(%q).\n", "음양같음", "음양다름")

	for _, name := range stemOrder {
		s := stems[name]
		fmt.Fprintf(&b, "stem(%q, %q, %q).\n", s.Name, s.Element, s.Polarity)
	}
	for _, name := range branchOrder {
		br := branches[name]
		fmt.Fprintf(&b, "branch(%q, %q, %q).\n", br.Name, br.Element, br.Polarity)
		for _, h := range br.Hidden {
			fmt.Fprintf(&b, "hidden(%q, %q, %q).\n", br.Name, h.Name, h.Element)
		}
	}

	// Pairs are emitted under their canonical key, as stored.
	for _, kind := range RelationKinds() {
		for _, p := range relationPairs[kind] {
			key := newPairKey(p[0], p[1])
			fmt.Fprintf(&b, "rel_pair(%q, %q, %q).\n", kind, key.A, key.B)
		}
	}
	for _, t := range triads {
		for _, branch := range t.Branches {
			fmt.Fprintf(&b, "triad_member(%q, %q).\n", t.Element, branch)
		}
	}
	for rel, row := range tenGodTable {
		for same, name := range row {
			match := "음양다름"
			if same {
				match = "음양같음"
			}
			fmt.Fprintf(&b, "ten_god(%q, %q, %q).\n", rel, match, name)
		}
	}

	return b.String()
}
