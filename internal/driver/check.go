// Package driver orchestrates the checking pipeline: lex, parse and
// semantic analysis per file, with parallel directory walks and a disk
// cache for unchanged files.
package driver

import (
	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/parser"
	"tscheck/internal/project"
	"tscheck/internal/sema"
	"tscheck/internal/source"
	"tscheck/internal/types"
)

// defaultMaxDiagnostics caps a file's bag when no limit is configured.
const defaultMaxDiagnostics = 256

// CheckFileResult bundles everything one file's pipeline produced.
type CheckFileResult struct {
	Path    string
	FileID  source.FileID
	ASTFile ast.FileID
	Builder *ast.Builder
	Sema    *sema.Result
	Bag     *diag.Bag
	// Cached marks results rebuilt from the disk cache.
	Cached bool
}

// CheckFile runs the full pipeline over one already loaded file. Each
// file gets its own interners, so calls are independent and safe to run
// concurrently.
func CheckFile(fileSet *source.FileSet, fileID source.FileID, cfg project.CheckConfig) CheckFileResult {
	maxDiags := cfg.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)
	reporter := &diag.BagReporter{Bag: bag}

	file := fileSet.Get(fileID)
	strings := source.NewInterner()
	arenas := ast.NewBuilder(ast.Hints{})

	pres := parser.ParseFile(file, arenas, strings, parser.Options{Reporter: reporter})

	policy, err := cfg.UnionPolicy()
	if err != nil {
		policy = types.UnionAbsorbAny
	}
	res := sema.Check(arenas, pres.File, strings, sema.Options{
		Reporter:    reporter,
		UnionPolicy: policy,
	})

	return CheckFileResult{
		Path:    file.Path,
		FileID:  fileID,
		ASTFile: pres.File,
		Builder: arenas,
		Sema:    res,
		Bag:     bag,
	}
}
