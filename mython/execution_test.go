package mython

import (
	"strings"
	"testing"
)

func TestExecutePrintArithmetic(t *testing.T) {
	out, err := run("print 1 + 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}
}

func TestExecuteStringConcatenation(t *testing.T) {
	out, err := run(`print "foo" + "bar"` + "\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Fatalf("got %q, want %q", out, "foobar\n")
	}
}

func TestExecuteIfElseIndentation(t *testing.T) {
	src := "x = 5\n" +
		"if x < 3:\n" +
		"  print \"small\"\n" +
		"else:\n" +
		"  print \"big\"\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "big\n" {
		t.Fatalf("got %q, want %q", out, "big\n")
	}
}

func TestExecuteClassAndMethod(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__(self, start):\n" +
		"    self.value = start\n" +
		"  def bump(self, by):\n" +
		"    self.value = self.value + by\n" +
		"    return self.value\n" +
		"c = Counter(10)\n" +
		"print c.bump(5)\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "15\n" {
		t.Fatalf("got %q, want %q", out, "15\n")
	}
}

func TestExecuteInheritanceOverride(t *testing.T) {
	src := "class Animal:\n" +
		"  def speak(self):\n" +
		"    return \"...\"\n" +
		"class Dog(Animal):\n" +
		"  def speak(self):\n" +
		"    return \"Woof\"\n" +
		"a = Animal()\n" +
		"d = Dog()\n" +
		"print a.speak()\n" +
		"print d.speak()\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "...\nWoof\n" {
		t.Fatalf("got %q, want %q", out, "...\nWoof\n")
	}
}

func TestExecuteStrDispatchesUserStr(t *testing.T) {
	src := "class Point:\n" +
		"  def __init__(self, x, y):\n" +
		"    self.x = x\n" +
		"    self.y = y\n" +
		"  def __str__(self):\n" +
		"    return str(self.x) + \",\" + str(self.y)\n" +
		"p = Point(1, 2)\n" +
		"print p\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1,2\n" {
		t.Fatalf("got %q, want %q", out, "1,2\n")
	}
}

func TestExecuteDivisionByZeroPreservesPriorOutput(t *testing.T) {
	src := "print 1\n" +
		"print 1 / 0\n"
	out, err := run(src)
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("expected prior output preserved, got %q", out)
	}
}

func TestExecuteEqualityAndOrdering(t *testing.T) {
	out, err := run("print 1 == 1\nprint 1 < 2\nprint False < True\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "True\nTrue\nTrue\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecuteUserDefinedEqAndLt(t *testing.T) {
	src := "class Box:\n" +
		"  def __init__(self, v):\n" +
		"    self.v = v\n" +
		"  def __eq__(self, other):\n" +
		"    return self.v == other.v\n" +
		"  def __lt__(self, other):\n" +
		"    return self.v < other.v\n" +
		"a = Box(1)\n" +
		"b = Box(2)\n" +
		"print a == b\n" +
		"print a < b\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "False\nTrue\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecuteReturnEscapesNestedIf(t *testing.T) {
	src := "class Classifier:\n" +
		"  def classify(self, n):\n" +
		"    if n < 0:\n" +
		"      return \"negative\"\n" +
		"    return \"non-negative\"\n" +
		"c = Classifier()\n" +
		"print c.classify(-1)\n" +
		"print c.classify(1)\n"
	out, err := run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "negative\nnon-negative\n" {
		t.Fatalf("got %q", out)
	}
}

func TestExecuteAndOrShortCircuit(t *testing.T) {
	out, err := run("print True or 1 / 0\nprint False and 1 / 0\n")
	if err != nil {
		t.Fatalf("unexpected short-circuit error: %v", err)
	}
	if out != "True\nFalse\n" {
		t.Fatalf("got %q", out)
	}
}
