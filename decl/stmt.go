package decl

import (
	"fmt"
)

// --- Statements ---

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode() // Marker method for statements
	PrettyPrint(cp CodePrinter)
}

// LetStmt represents `let name [: type] = expr;`
//
// The declared type is optional. Rebinding a name simply overwrites the
// previous entry in the function's flat scope.
type LetStmt struct {
	NodeInfo
	Name         string
	DeclaredType *Type // Optional annotation
	Value        Expr
}

func (l *LetStmt) stmtNode() {}

func (l *LetStmt) String() string {
	if l.DeclaredType != nil {
		return fmt.Sprintf("let %s: %s = %s;", l.Name, l.DeclaredType, l.Value)
	}
	return fmt.Sprintf("let %s = %s;", l.Name, l.Value)
}

func (l *LetStmt) PrettyPrint(cp CodePrinter) {
	if l.DeclaredType != nil {
		cp.Printf("let %s: ", l.Name)
		l.DeclaredType.PrettyPrint(cp)
		cp.Print(" = ")
	} else {
		cp.Printf("let %s = ", l.Name)
	}
	l.Value.PrettyPrint(cp)
	cp.Println(";")
}
