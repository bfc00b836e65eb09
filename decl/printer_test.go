package decl

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSprintTypedTree(t *testing.T) {
	color.NoColor = true

	b := NewBuilder()
	lit := b.IntLit(20)
	fn := b.Func("test", I32Type, []Stmt{
		b.Let("a", nil, lit),
	}, b.Ident("a"))

	// Untyped nodes print without a type suffix.
	out := Sprint(fn)
	assert.Contains(t, out, "fn test(): i32 {")
	assert.Contains(t, out, "let a = 20;")

	lit.SetType(I32Type)
	fn.Result.SetType(I32Type)
	out = Sprint(fn)
	assert.Contains(t, out, "let a = 20: i32;")
	assert.Contains(t, out, "a: i32")
}

func TestSprintBinaryAndAnnotation(t *testing.T) {
	color.NoColor = true

	b := NewBuilder()
	bin := b.Binary("+", b.IntLit(50), b.Ident("b"))
	fn := b.Func("test", I32Type, []Stmt{
		b.Let("a", I32Type, b.IntLit(20)),
		b.Let("c", nil, bin),
	}, nil)

	out := Sprint(fn)
	assert.Contains(t, out, "let a: i32 = 20;")
	assert.Contains(t, out, "let c = (50 + b);")

	bin.SetType(I32Type)
	out = Sprint(fn)
	assert.Contains(t, out, "(50 + b): i32")
}

func TestCodePrinterIndent(t *testing.T) {
	cp := NewCodePrinter()
	cp.Println("{")
	WithIndent(1, cp, func(cp CodePrinter) {
		cp.Println("inner")
	})
	cp.Println("}")
	assert.Equal(t, "{\n  inner\n}\n", cp.(*codePrinter).Output())
}
