// Package exhaustive provides an analyzer that reports switch statements
// over a closed enum type that omit one of its declared constants.
//
// By default it checks duration.Tier. Any named type can be selected with
// the -type flag, given as "import/path.TypeName".
package exhaustive

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// DefaultType is the enum type checked when -type is not given.
const DefaultType = "github.com/bella-notify/bella-go/pkg/duration.Tier"

const doc = `report switch statements over a closed enum that miss a variant

A switch whose tag has the checked type must either list every constant
of that type declared in its package or carry a default clause.`

// Analyzer reports non-exhaustive switches.
var Analyzer = &analysis.Analyzer{
	Name:     "tierswitch",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var typeFlag string

func init() {
	Analyzer.Flags.StringVar(&typeFlag, "type", DefaultType, "qualified enum type to check (import/path.Name)")
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.SwitchStmt)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		sw := n.(*ast.SwitchStmt)
		if sw.Tag == nil {
			return
		}

		named, ok := types.Unalias(pass.TypesInfo.TypeOf(sw.Tag)).(*types.Named)
		if !ok || qualifiedName(named) != typeFlag {
			return
		}

		covered := make(map[string]bool)
		for _, stmt := range sw.Body.List {
			clause := stmt.(*ast.CaseClause)
			if clause.List == nil {
				return // default
			}
			for _, expr := range clause.List {
				if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
					covered[tv.Value.ExactString()] = true
				}
			}
		}

		var missing []string
		for _, c := range members(named) {
			if !covered[c.Val().ExactString()] {
				missing = append(missing, c.Name())
			}
		}
		if len(missing) == 0 {
			return
		}

		pass.Reportf(sw.Pos(), "missing cases in switch of type %s: %s",
			shortName(named), strings.Join(missing, ", "))
	})

	return nil, nil
}

// members returns the constants of type t declared in t's package, ordered
// by value. Constants sharing a value are reported once, under the name
// declared first.
func members(t *types.Named) []*types.Const {
	pkg := t.Obj().Pkg()
	if pkg == nil {
		return nil
	}

	var all []*types.Const
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), t) {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Pos() < all[j].Pos() })

	seen := make(map[string]bool)
	consts := all[:0]
	for _, c := range all {
		key := c.Val().ExactString()
		if seen[key] {
			continue
		}
		seen[key] = true
		consts = append(consts, c)
	}

	sort.SliceStable(consts, func(i, j int) bool {
		return constant.Compare(consts[i].Val(), token.LSS, consts[j].Val())
	})
	return consts
}

func qualifiedName(t *types.Named) string {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

func shortName(t *types.Named) string {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Name() + "." + obj.Name()
}
