package decl

import (
	"fmt"
)

// Expr represents an expression node.
//
// Every expression carries an immutable node id, assigned by the Builder at
// construction time, and a mutable concrete-type slot. The slot starts nil
// and is written exactly once, by unification or by the defaulting pass.
type Expr interface {
	Node
	exprNode() // Marker method for expressions
	ID() int64
	Type() *Type
	SetType(t *Type)
	PrettyPrint(cp CodePrinter)
}

type ExprBase struct {
	NodeInfo
	id  int64
	typ *Type
}

func (e *ExprBase) ID() int64 {
	return e.id
}

func (e *ExprBase) SetType(t *Type) {
	e.typ = t
}

func (e *ExprBase) Type() *Type {
	return e.typ
}

func (e *ExprBase) exprNode() {}

// LiteralExpr represents an untyped numeric literal. Its concrete width is
// not known at parse time; inference assigns a class placeholder and the
// final width arrives via unification or defaulting.
type LiteralExpr struct {
	ExprBase
	Value Value
}

func (l *LiteralExpr) String() string {
	return l.Value.String()
}

func (l *LiteralExpr) PrettyPrint(cp CodePrinter) {
	cp.Printf("%s%s", l.String(), typeSuffix(l.Type()))
}

// IdentifierExpr represents a reference to a bound name.
type IdentifierExpr struct {
	ExprBase
	Name string
}

func (i *IdentifierExpr) String() string {
	return i.Name
}

func (i *IdentifierExpr) PrettyPrint(cp CodePrinter) {
	cp.Printf("%s%s", i.Name, typeSuffix(i.Type()))
}

// BinaryExpr represents `left operator right`.
type BinaryExpr struct {
	ExprBase
	Left     Expr
	Operator string // "+", "-", "*", "/"
	Right    Expr
}

func (b *BinaryExpr) String() string {
	leftStr := "nil"
	if b.Left != nil {
		leftStr = b.Left.String()
	}
	rightStr := "nil"
	if b.Right != nil {
		rightStr = b.Right.String()
	}
	return fmt.Sprintf("(%s %s %s)", leftStr, b.Operator, rightStr)
}

func (b *BinaryExpr) PrettyPrint(cp CodePrinter) {
	cp.Print("(")
	b.Left.PrettyPrint(cp)
	cp.Printf(" %s ", b.Operator)
	b.Right.PrettyPrint(cp)
	cp.Printf(")%s", typeSuffix(b.Type()))
}
