package diag

import (
	"testing"

	"tscheck/internal/source"
)

func TestBagRespectsCap(t *testing.T) {
	bag := NewBag(2)
	span := source.Span{File: 0, Start: 0, End: 1}
	if !bag.Add(NewError(SemaIncompatibleAssignment, span, "a")) {
		t.Fatalf("first add should succeed")
	}
	if !bag.Add(NewError(SemaIncompatibleAssignment, span, "b")) {
		t.Fatalf("second add should succeed")
	}
	if bag.Add(NewError(SemaIncompatibleAssignment, span, "c")) {
		t.Fatalf("add past cap should fail")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SemaArityMismatch, source.Span{File: 0, Start: 20, End: 22}, "later"))
	bag.Add(NewError(SemaUndeclaredIdentifier, source.Span{File: 0, Start: 5, End: 6}, "earlier"))
	bag.Add(New(SevWarning, UnknownCode, source.Span{File: 0, Start: 5, End: 6}, "warn same span"))
	bag.Sort()

	items := bag.Items()
	if items[0].Message != "earlier" {
		t.Fatalf("expected error before warning at same span, got %q", items[0].Message)
	}
	if items[2].Message != "later" {
		t.Fatalf("expected later span last, got %q", items[2].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	span := source.Span{File: 0, Start: 3, End: 7}
	bag.Add(NewError(SemaDuplicateDeclaration, span, "x"))
	bag.Add(NewError(SemaDuplicateDeclaration, span, "x again"))
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 after dedup, got %d", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, SemaIncompatibleAssignment, source.Span{}, "mismatch").
		WithTypes("number", "string")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected one emit, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.SrcType != "number" || d.DstType != "string" {
		t.Fatalf("type labels not carried: %+v", d)
	}
}
