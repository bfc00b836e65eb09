package decl

import (
	"fmt"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// --- Interfaces ---

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() int       // Starting position (for error reporting)
	End() int       // Ending position
	String() string // String representation for debugging/printing
}

// --- Base Struct ---

// NodeInfo embeddable struct for position tracking.
type NodeInfo struct{ StartPos, StopPos int }

func (n *NodeInfo) Pos() int       { return n.StartPos }
func (n *NodeInfo) End() int       { return n.StopPos }
func (n *NodeInfo) String() string { return "{Node}" } // Default stringer

// FuncDecl represents `fn name(): returnType { stmts...; result }`
//
// Result is the optional trailing expression; its inferred type must unify
// with the declared return type.
type FuncDecl struct {
	NodeInfo
	Name       string
	ReturnType *Type
	Stmts      []Stmt
	Result     Expr
}

func (f *FuncDecl) String() string {
	stmts := strings.Join(gfn.Map(f.Stmts, func(s Stmt) string { return s.String() }), " ")
	return fmt.Sprintf("fn %s(): %s { %s }", f.Name, f.ReturnType, stmts)
}

func (f *FuncDecl) PrettyPrint(cp CodePrinter) {
	cp.Printf("fn %s(): ", f.Name)
	f.ReturnType.PrettyPrint(cp)
	cp.Println(" {")
	cp.Indent(1)
	for _, stmt := range f.Stmts {
		stmt.PrettyPrint(cp)
	}
	if f.Result != nil {
		f.Result.PrettyPrint(cp)
		cp.Println("")
	}
	cp.Unindent(1)
	cp.Println("}")
}

// --- Builder ---

// Builder constructs AST nodes and owns the node-id allocator. Ids only need
// to be unique within one tree, so each front end (parser or test harness)
// creates its own Builder rather than sharing process-wide state.
type Builder struct {
	nextID int64
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) allocID() int64 {
	b.nextID++
	return b.nextID
}

func (b *Builder) IntLit(v int64) *LiteralExpr {
	return &LiteralExpr{ExprBase: ExprBase{id: b.allocID()}, Value: IntValue(v)}
}

func (b *Builder) FloatLit(v float64) *LiteralExpr {
	return &LiteralExpr{ExprBase: ExprBase{id: b.allocID()}, Value: FloatValue(v)}
}

func (b *Builder) Ident(name string) *IdentifierExpr {
	return &IdentifierExpr{ExprBase: ExprBase{id: b.allocID()}, Name: name}
}

func (b *Builder) Binary(operator string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{
		ExprBase: ExprBase{id: b.allocID()},
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}

// Let builds a binding statement. Pass a nil declared type for a plain
// (unannotated) binding.
func (b *Builder) Let(name string, declared *Type, value Expr) *LetStmt {
	return &LetStmt{Name: name, DeclaredType: declared, Value: value}
}

func (b *Builder) Func(name string, returnType *Type, stmts []Stmt, result Expr) *FuncDecl {
	return &FuncDecl{Name: name, ReturnType: returnType, Stmts: stmts, Result: result}
}
