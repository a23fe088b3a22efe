package sema

import (
	"testing"

	"tscheck/internal/ast"
	"tscheck/internal/diag"
	"tscheck/internal/parser"
	"tscheck/internal/source"
	"tscheck/internal/types"
)

type checkFixture struct {
	res *Result
	bag *diag.Bag
}

func runCheck(t *testing.T, src string) checkFixture {
	return runCheckOpts(t, src, Options{})
}

func runCheckOpts(t *testing.T, src string, opts Options) checkFixture {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ts", []byte(src))
	strings := source.NewInterner()
	arenas := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(128)
	reporter := &diag.BagReporter{Bag: bag}

	pres := parser.ParseFile(fs.Get(id), arenas, strings, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("fixture must parse cleanly, got %v", bag.Items())
	}
	opts.Reporter = reporter
	res := Check(arenas, pres.File, strings, opts)
	return checkFixture{res: res, bag: bag}
}

func (f checkFixture) codes() []diag.Code {
	items := f.bag.Items()
	out := make([]diag.Code, len(items))
	for i, d := range items {
		out[i] = d.Code
	}
	return out
}

func (f checkFixture) requireCodes(t *testing.T, want ...diag.Code) {
	t.Helper()
	got := f.codes()
	if len(got) != len(want) {
		t.Fatalf("diagnostics = %v, want %v (items: %v)", got, want, f.bag.Items())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("diagnostic %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeclarationsWellTyped(t *testing.T) {
	f := runCheck(t, `
let a: number = 42;
const b: string = "hello";
let c: boolean = true;
let d: bigint = 10n;
let e: number[] = [1, 2, 3];
let g: [number, string] = [1, "two"];
let h: number | string = "either";
let i: (x: number) => number = (x: number) => x + 1;
let j: null = null;
let k: undefined = undefined;
`)
	f.requireCodes(t)
}

func TestIncompatibleInitializer(t *testing.T) {
	f := runCheck(t, `let z: number = "world";`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
	d := f.bag.Items()[0]
	if d.SrcType != `"world"` || d.DstType != "number" {
		t.Errorf("labels = %q -> %q", d.SrcType, d.DstType)
	}
}

func TestAnnotationWins(t *testing.T) {
	f := runCheck(t, `
let x: number = 1;
let y: string = x;
`)
	// x is declared as number, not the literal 1, so assigning it to a
	// string reports number, not 1.
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
	if f.bag.Items()[0].SrcType != "number" {
		t.Errorf("SrcType = %q, want number", f.bag.Items()[0].SrcType)
	}
}

func TestLiteralKeptWithoutAnnotation(t *testing.T) {
	f := runCheck(t, `
const dir = "north";
let route: "north" | "south" = dir;
`)
	f.requireCodes(t)
}

func TestUndeclaredIdentifier(t *testing.T) {
	f := runCheck(t, `let x = missing;`)
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestUndeclaredRecoversWithAny(t *testing.T) {
	// The failed lookup recovers with any, so downstream uses do not
	// cascade into secondary diagnostics.
	f := runCheck(t, `
let x = missing;
let y: number = x;
let z: string = x;
`)
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestDuplicateDeclaration(t *testing.T) {
	f := runCheck(t, `
let x = 1;
let x = 2;
`)
	f.requireCodes(t, diag.SemaDuplicateDeclaration)
	if len(f.bag.Items()[0].Notes) == 0 {
		t.Error("duplicate diagnostic should carry a note at the previous declaration")
	}
}

func TestShadowingIsLegal(t *testing.T) {
	f := runCheck(t, `
let x: number = 1;
{
	let x: string = "inner";
	let y: string = x;
}
let z: number = x;
`)
	f.requireCodes(t)
}

func TestFunctionChecking(t *testing.T) {
	f := runCheck(t, `
function add(a: number, b: number): number {
	return a + b;
}
let r: number = add(1, 2);
`)
	f.requireCodes(t)
}

func TestReturnMismatch(t *testing.T) {
	f := runCheck(t, `
function bad(): number {
	return "oops";
}
`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestInferredReturnUnion(t *testing.T) {
	f := runCheck(t, `
function pick(flag: boolean) {
	{
		return 1;
	}
	return "one";
}
let r: number | string = pick(true);
`)
	f.requireCodes(t)
}

func TestInferredReturnVoid(t *testing.T) {
	f := runCheck(t, `
function noop() {
	let x = 1;
}
let v: void = noop();
`)
	f.requireCodes(t)
}

func TestHoisting(t *testing.T) {
	// later is called before its declaration site.
	f := runCheck(t, `
let r: number = later(1);
function later(x: number): number {
	return x;
}
`)
	f.requireCodes(t)
}

func TestIndexWithMissingOperands(t *testing.T) {
	// An index node whose operands were never built must recover like
	// every other malformed handle instead of crashing.
	strings := source.NewInterner()
	arenas := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}
	file := arenas.NewFile(sp)

	str := arenas.Exprs.NewLiteral(sp, ast.ExprLitString, strings.Intern("s"))
	missingBoth := arenas.Exprs.NewIndex(sp, ast.NoExprID, ast.NoExprID)
	missingIndex := arenas.Exprs.NewIndex(sp, str, ast.NoExprID)
	arenas.PushStmt(file, arenas.Stmts.NewExpr(sp, missingBoth))
	arenas.PushStmt(file, arenas.Stmts.NewExpr(sp, missingIndex))

	bag := diag.NewBag(8)
	res := Check(arenas, file, strings, Options{Reporter: &diag.BagReporter{Bag: bag}})

	if got := res.ExprTypes[missingBoth]; got != res.Types.Builtins().Any {
		t.Errorf("missing target: type = %s, want any", types.Label(res.Types, got))
	}
	if got := res.ExprTypes[missingIndex]; got != res.Types.Builtins().String {
		t.Errorf("missing index on string: type = %s, want string", types.Label(res.Types, got))
	}
}

func TestDuplicateFunctionKeepsFirstSignature(t *testing.T) {
	// The duplicate's body pass must not refine the surviving symbol:
	// f stays () => void, so the call still type-checks against void.
	f := runCheck(t, `
function f(): void {}
function f() {
	return 1;
}
let x: void = f();
`)
	f.requireCodes(t, diag.SemaDuplicateDeclaration)
}

func TestVariablesAreNotHoisted(t *testing.T) {
	f := runCheck(t, `
let a = b;
let b = 1;
`)
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestArityMismatch(t *testing.T) {
	f := runCheck(t, `
function two(a: number, b: number): number {
	return a;
}
let r = two(1);
`)
	f.requireCodes(t, diag.SemaArityMismatch)
}

func TestArityBeforeArgumentChecks(t *testing.T) {
	// The extra argument triggers arity only; the shared prefix is
	// still checked and the bad first argument reported after it.
	f := runCheck(t, `
function one(a: number): number {
	return a;
}
let r = one("s", 2);
`)
	f.requireCodes(t, diag.SemaArityMismatch, diag.SemaIncompatibleAssignment)
}

func TestNotCallable(t *testing.T) {
	f := runCheck(t, `
let n = 5;
let r = n(1);
`)
	f.requireCodes(t, diag.SemaNotCallable)
}

func TestParamScope(t *testing.T) {
	f := runCheck(t, `
function probe(secret: number): number {
	return secret;
}
let leak = secret;
`)
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestTuplePerPositionDiagnostics(t *testing.T) {
	f := runCheck(t, `let t: [number, string, boolean] = ["x", "y", 1];`)
	// Positions 0 and 2 are wrong, position 1 is fine: two diagnostics.
	f.requireCodes(t, diag.SemaIncompatibleAssignment, diag.SemaIncompatibleAssignment)
	first, second := f.bag.Items()[0], f.bag.Items()[1]
	if first.DstType != "number" || second.DstType != "boolean" {
		t.Errorf("targets = %q, %q; want number, boolean", first.DstType, second.DstType)
	}
	if first.Primary.Start >= second.Primary.Start {
		t.Error("diagnostics should point at distinct elements in order")
	}
}

func TestTupleArityMismatchSingleDiagnostic(t *testing.T) {
	f := runCheck(t, `let t: [number, string] = [1];`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestNestedTupleTargets(t *testing.T) {
	f := runCheck(t, `let t: [[number, number], string] = [[1, "x"], "ok"];`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
	if f.bag.Items()[0].DstType != "number" {
		t.Errorf("DstType = %q, want number", f.bag.Items()[0].DstType)
	}
}

func TestAssignmentStatement(t *testing.T) {
	f := runCheck(t, `
let x: number = 1;
x = 2;
x = "nope";
`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestAssignmentToUndeclared(t *testing.T) {
	f := runCheck(t, `ghost = 1;`)
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestBinaryOperatorTable(t *testing.T) {
	f := runCheck(t, `
let s: string = "a" + 1;
let n: number = 1 + 2;
let big: bigint = 1n + 2n;
let cmp: boolean = 1 < 2;
let eq: boolean = "a" === "b";
let bits: number = 5 & 3;
let logic: boolean = true && false;
`)
	f.requireCodes(t)
}

func TestBigIntNumberMixRejected(t *testing.T) {
	f := runCheck(t, `let x = 1n + 2;`)
	f.requireCodes(t, diag.SemaInvalidOperation)
}

func TestUnaryOperators(t *testing.T) {
	f := runCheck(t, `
let n: number = -5;
let b: boolean = !true;
let s: string = typeof 1;
let big: bigint = -1n;
`)
	f.requireCodes(t)
}

func TestNegateString(t *testing.T) {
	f := runCheck(t, `let x = -"str";`)
	f.requireCodes(t, diag.SemaInvalidOperation)
}

func TestIndexing(t *testing.T) {
	f := runCheck(t, `
let xs: number[] = [1, 2];
let x: number = xs[0];
let t: [number, string] = [1, "a"];
let first: number = t[0];
let second: string = t[1];
let s: string = "abc"[1];
`)
	f.requireCodes(t)
}

func TestTupleIndexOutOfRange(t *testing.T) {
	f := runCheck(t, `
let t: [number, string] = [1, "a"];
let x = t[5];
`)
	f.requireCodes(t, diag.SemaInvalidOperation)
}

func TestNonNumericIndex(t *testing.T) {
	f := runCheck(t, `
let xs: number[] = [1];
let x = xs["key"];
`)
	f.requireCodes(t, diag.SemaInvalidOperation)
}

func TestEmptyArrayIsNeverArray(t *testing.T) {
	f := runCheck(t, `
let xs: number[] = [];
let ys: string[] = [];
`)
	f.requireCodes(t)
}

func TestArrayCovariance(t *testing.T) {
	f := runCheck(t, `
let lits = [1, 2, 3];
let nums: number[] = lits;
`)
	f.requireCodes(t)
}

func TestUnknownAcceptsAll(t *testing.T) {
	f := runCheck(t, `
let u1: unknown = 1;
let u2: unknown = "s";
let u3: unknown = [1, 2];
`)
	f.requireCodes(t)
}

func TestUnknownNotAssignableToNumber(t *testing.T) {
	f := runCheck(t, `
let u: unknown = 1;
let n: number = u;
`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestUnknownTypeName(t *testing.T) {
	f := runCheck(t, `let x: Widget = 1;`)
	// One diagnostic for the name; the declaration recovers with any so
	// the initializer check stays silent.
	f.requireCodes(t, diag.SemaUndeclaredIdentifier)
}

func TestArrowExpressions(t *testing.T) {
	f := runCheck(t, `
let inc: (x: number) => number = (x: number) => x + 1;
let toStr: (x: number) => string = (x: number): string => "n";
let pair = (a: number, b: string) => [a];
`)
	f.requireCodes(t)
}

func TestArrowBodyMismatch(t *testing.T) {
	f := runCheck(t, `let f = (x: number): string => x + 1;`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestFunctionVariance(t *testing.T) {
	f := runCheck(t, `
function wide(x: number | string): number {
	return 1;
}
let narrow: (x: number) => number = wide;
`)
	f.requireCodes(t)
}

func TestFunctionVarianceRejected(t *testing.T) {
	f := runCheck(t, `
function narrow(x: number): number {
	return x;
}
let wide: (x: number | string) => number = narrow;
`)
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}

func TestUnionAbsorbsAnyByDefault(t *testing.T) {
	f := runCheck(t, `
let x: number | any = 1;
let n: string = x;
`)
	// number | any collapses to any, so the second line is accepted.
	f.requireCodes(t)
}

func TestUnionKeepAnyPolicy(t *testing.T) {
	f := runCheckOpts(t, `
let x: number | any = "s";
`, Options{UnionPolicy: types.UnionKeepAny})
	// any stays a member, and "s" is accepted by it either way.
	f.requireCodes(t)
}

func TestCheckIsIdempotent(t *testing.T) {
	src := `
let x: number = "bad";
function f(a: number): string {
	return a;
}
`
	first := runCheck(t, src)
	second := runCheck(t, src)
	a, b := first.codes(), second.codes()
	if len(a) != len(b) {
		t.Fatalf("runs disagree: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("diagnostic %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestExprTypesRecorded(t *testing.T) {
	f := runCheck(t, `let x = 1 + 2;`)
	if len(f.res.ExprTypes) == 0 {
		t.Fatal("ExprTypes should be populated")
	}
	b := f.res.Types.Builtins()
	found := false
	for _, tid := range f.res.ExprTypes {
		if tid == b.Number {
			found = true
		}
	}
	if !found {
		t.Error("the sum expression should be typed number")
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	f := runCheck(t, `return 1;`)
	f.requireCodes(t, diag.SemaMalformedInput)
}

func TestNoFalseCascadesAfterRecovery(t *testing.T) {
	f := runCheck(t, `
let bad: number = "s";
let fine: number = bad;
`)
	// bad keeps its declared type number, so line 2 is clean.
	f.requireCodes(t, diag.SemaIncompatibleAssignment)
}
