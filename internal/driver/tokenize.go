package driver

import (
	"tscheck/internal/diag"
	"tscheck/internal/lexer"
	"tscheck/internal/source"
	"tscheck/internal/token"
)

// TokenizeResult bundles the token stream for one file with its
// diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and runs only the lexer over it.
func Tokenize(path string, maxDiags int) (*TokenizeResult, error) {
	if maxDiags <= 0 {
		maxDiags = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiags)

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}

	tokens := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fileSet,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
