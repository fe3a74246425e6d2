package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// RegexpInitAnalyzer запрещает компилировать регулярные выражения внутри функций.
// Шаблоны разбора ссылок и длительностей должны компилироваться один раз при инициализации пакета.
var RegexpInitAnalyzer = &analysis.Analyzer{
	Name:     "regexpinit",
	Doc:      "reports regexp.Compile and regexp.MustCompile calls inside function bodies",
	Run:      runRegexpInitCheck,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var regexpCompileFuncs = map[string]bool{
	"Compile":          true,
	"MustCompile":      true,
	"CompilePOSIX":     true,
	"MustCompilePOSIX": true,
}

func runRegexpInitCheck(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	inspect.Preorder(nodeFilter, func(node ast.Node) {
		funcDecl := node.(*ast.FuncDecl)
		// init выполняется один раз
		if funcDecl.Body == nil || (funcDecl.Recv == nil && funcDecl.Name.Name == "init") {
			return
		}

		ast.Inspect(funcDecl.Body, func(n ast.Node) bool {
			callExpr, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if name, ok := packageFunc(pass, callExpr, "regexp"); ok && regexpCompileFuncs[name] {
				pass.Reportf(callExpr.Pos(),
					"regexp.%s inside a function body, compile the pattern once at package level", name)
			}
			return true
		})
	})

	return nil, nil
}
