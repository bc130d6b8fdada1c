package mython

import (
	"strings"
	"testing"
)

func parseSource(t *testing.T, src string) *Compound {
	t.Helper()
	lx, err := NewLexer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	p, err := NewParser(lx)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	program, errs := p.ParseProgram()
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return program
}

func TestParserAssignmentAndPrint(t *testing.T) {
	program := parseSource(t, "x = 1 + 2\nprint x\n")
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	assign, ok := program.Statements[0].(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", program.Statements[0])
	}
	if assign.Var != "x" {
		t.Fatalf("expected var x, got %s", assign.Var)
	}
	if _, ok := assign.RV.(*Add); !ok {
		t.Fatalf("expected Add on rhs, got %T", assign.RV)
	}
	print, ok := program.Statements[1].(*Print)
	if !ok {
		t.Fatalf("expected *Print, got %T", program.Statements[1])
	}
	if len(print.Args) != 1 {
		t.Fatalf("expected 1 print arg, got %d", len(print.Args))
	}
}

func TestParserIfElse(t *testing.T) {
	program := parseSource(t, "if x < 1:\n  print 1\nelse:\n  print 2\n")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	ifElse, ok := program.Statements[0].(*IfElse)
	if !ok {
		t.Fatalf("expected *IfElse, got %T", program.Statements[0])
	}
	if ifElse.Else == nil {
		t.Fatalf("expected else body")
	}
	cmp, ok := ifElse.Cond.(*Comparison)
	if !ok || cmp.Op != OpLess {
		t.Fatalf("expected Less comparison, got %#v", ifElse.Cond)
	}
}

func TestParserClassWithInheritance(t *testing.T) {
	src := "class Animal:\n" +
		"  def __init__(self, name):\n" +
		"    self.name = name\n" +
		"class Dog(Animal):\n" +
		"  def bark(self):\n" +
		"    print self.name\n"
	program := parseSource(t, src)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	animalDef := program.Statements[0].(*ClassDefinition)
	dogDef := program.Statements[1].(*ClassDefinition)
	if dogDef.Class.Parent != animalDef.Class {
		t.Fatalf("expected Dog's parent to be the resolved Animal class")
	}
	if len(dogDef.Class.Methods) != 1 || dogDef.Class.Methods[0].Name != "bark" {
		t.Fatalf("unexpected Dog methods: %#v", dogDef.Class.Methods)
	}
}

func TestParserUnknownClassIsAnError(t *testing.T) {
	lx, err := NewLexer(strings.NewReader("x = Ghost()\n"))
	if err != nil {
		t.Fatalf("NewLexer: %v", err)
	}
	p, err := NewParser(lx)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	_, errs := p.ParseProgram()
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for an unknown class")
	}
}

func TestParserMethodCallChain(t *testing.T) {
	src := "class Counter:\n" +
		"  def inc(self):\n" +
		"    return 1\n" +
		"c = Counter()\n" +
		"c.inc()\n"
	program := parseSource(t, src)
	call, ok := program.Statements[2].(*MethodCall)
	if !ok {
		t.Fatalf("expected *MethodCall, got %T", program.Statements[2])
	}
	if call.Method != "inc" {
		t.Fatalf("expected method inc, got %s", call.Method)
	}
}
