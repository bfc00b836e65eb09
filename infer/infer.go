package infer

import (
	"github.com/panyam/tinfer/decl"
)

// Inference walks one function body, assigning every expression node a
// provisional type and pinning concrete types as constraints appear. Not
// safe for concurrent use; run one function at a time.
type Inference struct {
	defaults Defaults
	env      *Environment
}

// New creates an engine with the given defaulting policy. Nil policy slots
// fall back to DefaultPolicy (i64/f64).
func New(policy Defaults) *Inference {
	if policy.Int == nil {
		policy.Int = DefaultPolicy.Int
	}
	if policy.Float == nil {
		policy.Float = DefaultPolicy.Float
	}
	return &Inference{defaults: policy}
}

// InferFunction runs the full pass over one function: binding statements in
// order, then the trailing result expression against the declared return
// type, then defaulting for everything still unresolved. The tree is mutated
// in place; on error the pass stops and the tree is left partially typed.
func (inf *Inference) InferFunction(fn *decl.FuncDecl) error {
	inf.env = NewEnvironment()
	defer func() { inf.env = nil }()

	for _, stmt := range fn.Stmts {
		switch s := stmt.(type) {
		case *decl.LetStmt:
			if err := inf.inferBinding(s); err != nil {
				return err
			}
		default:
			return internalErr("no inference rule for statement %T", stmt)
		}
	}

	if fn.Result != nil {
		t, err := inf.inferExpr(fn.Result)
		if err != nil {
			return err
		}
		if err := inf.unify(t, fn.ReturnType); err != nil {
			return err
		}
	}

	return inf.applyDefaults()
}

// inferBinding processes `let name [: type] = expr`. An explicit annotation
// pins the initializer immediately; otherwise the name carries whatever the
// initializer inferred, placeholder or not.
func (inf *Inference) inferBinding(s *decl.LetStmt) error {
	t, err := inf.inferExpr(s.Value)
	if err != nil {
		return err
	}
	if s.DeclaredType != nil {
		inf.env.addBinding(s.Name, Resolved(s.DeclaredType))
		return inf.unify(t, s.DeclaredType)
	}
	inf.env.addBinding(s.Name, t)
	return nil
}

// inferExpr assigns the node its provisional type, registering placeholders
// in the unresolved set and writing resolved types straight into the slot.
func (inf *Inference) inferExpr(expr decl.Expr) (InferType, error) {
	env := inf.env
	env.exprs[expr.ID()] = expr

	var t InferType
	switch e := expr.(type) {
	case *decl.LiteralExpr:
		if e.Value.IsFloat() {
			t = UnresolvedFloat(e.ID())
		} else {
			t = UnresolvedInt(e.ID())
		}
	case *decl.IdentifierExpr:
		found, ok := env.findType(e.Name)
		if !ok {
			return InferType{}, notFoundErr(e.Name)
		}
		if found.IsPlaceholder() {
			// This occurrence aliases the binding: pinning it later must
			// rebind the name too. The placeholder value itself is reused,
			// keeping the origin id of the literal that produced it.
			env.bindingID[e.ID()] = e.Name
		}
		t = found
	case *decl.BinaryExpr:
		var err error
		t, err = inf.inferBinary(e)
		if err != nil {
			return InferType{}, err
		}
	default:
		return InferType{}, internalErr("no inference rule for expression %T", expr)
	}

	if t.IsPlaceholder() {
		env.unresolved[expr.ID()] = t
	} else {
		expr.SetType(t.Type)
	}
	return t, nil
}

// inferBinary infers both operands, records the adjacency needed for later
// propagation, and combines the operand types.
func (inf *Inference) inferBinary(e *decl.BinaryExpr) (InferType, error) {
	lt, err := inf.inferExpr(e.Left)
	if err != nil {
		return InferType{}, err
	}
	rt, err := inf.inferExpr(e.Right)
	if err != nil {
		return InferType{}, err
	}

	inf.env.parentBin[e.Left.ID()] = e.ID()
	inf.env.parentBin[e.Right.ID()] = e.ID()

	switch {
	case lt.IsPlaceholder() && rt.IsPlaceholder():
		if lt.Tag != rt.Tag {
			return InferType{}, mismatchErr(lt.String(), rt.String())
		}
		if lt.Tag == TagUnresolvedInt {
			return UnresolvedInt(e.ID()), nil
		}
		return UnresolvedFloat(e.ID()), nil
	case lt.Tag == TagResolved && rt.Tag == TagResolved:
		if !lt.Type.Equals(rt.Type) {
			return InferType{}, mismatchErr(lt.Type.String(), rt.Type.String())
		}
		return lt, nil
	case lt.Tag == TagResolved:
		if err := inf.unify(rt, lt.Type); err != nil {
			return InferType{}, err
		}
		return lt, nil
	default:
		if err := inf.unify(lt, rt.Type); err != nil {
			return InferType{}, err
		}
		return rt, nil
	}
}
