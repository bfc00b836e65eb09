package decl

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type CodePrinter interface {
	Indent(n int)
	Unindent(n int)
	Print(str string)
	Printf(fmt string, args ...any)
	Println(str string)
}

func WithIndent(n int, cp CodePrinter, block func(cp CodePrinter)) {
	cp.Indent(n)
	defer cp.Unindent(n)
	block(cp)
}

type codePrinter struct {
	indent      int
	col         int
	builder     strings.Builder
	linebuilder strings.Builder
}

func (c *codePrinter) Indent(n int) {
	c.indent += n
}

func (c *codePrinter) Unindent(n int) {
	c.indent -= n
	if c.indent < 0 {
		c.indent = 0
	}
}

func (c *codePrinter) Print(str string) {
	for idx, l := range strings.Split(str, "\n") {
		if idx > 0 {
			// newline boundary: flush the pending line
			c.builder.WriteString(c.linebuilder.String())
			c.builder.WriteRune('\n')
			c.linebuilder.Reset()
			c.col = 0
		}
		if l == "" {
			continue
		}
		if c.col == 0 {
			// new line has started so add the indent string
			c.linebuilder.WriteString(c.IndentString())
		}
		c.linebuilder.WriteString(l)
		c.col += len(l)
	}
}

func (c *codePrinter) Println(str string) {
	c.Print(str + "\n")
}

func (c *codePrinter) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c *codePrinter) IndentString() string {
	return strings.Repeat("  ", c.indent)
}

func (c *codePrinter) Output() string {
	return c.builder.String() + c.linebuilder.String()
}

func NewCodePrinter() CodePrinter {
	return &codePrinter{}
}

// typeColor renders concrete type tags bold green in printed trees.
var typeColor = color.New(color.FgGreen, color.Bold)

// TypeString renders a concrete type tag for display.
func TypeString(t *Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return typeColor.Sprint(t.Name)
}

// typeSuffix renders the `: type` annotation appended to typed nodes, or
// nothing when the node's slot has not been written yet.
func typeSuffix(t *Type) string {
	if t == nil {
		return ""
	}
	return ": " + TypeString(t)
}

type PrettyPrintable interface {
	PrettyPrint(cp CodePrinter)
}

// Sprint renders a node to a string.
func Sprint(node PrettyPrintable) string {
	cp := &codePrinter{}
	node.PrettyPrint(cp)
	return cp.Output()
}

// PPrint prints a node tree to stdout.
func PPrint(node PrettyPrintable) {
	fmt.Println(Sprint(node))
}
