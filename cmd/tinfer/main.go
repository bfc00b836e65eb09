package main

import (
	"flag"
	"log"

	"github.com/panyam/tinfer/decl"
	"github.com/panyam/tinfer/infer"
)

var useBinaryExample = flag.Bool("binary", false, "run the binary-expression example instead of the alias chain")

// aliasChainExample builds:
//
//	fn test(): i32 {
//	  let a = 20;
//	  let b = a;
//	  let c = b;
//	  let e = c;
//	  let d = 20.20;
//	  a
//	}
//
// Everything reachable from the return constraint lands on i32; the
// unconstrained float literal defaults to f64.
func aliasChainExample(b *decl.Builder) *decl.FuncDecl {
	return b.Func("test", decl.I32Type, []decl.Stmt{
		b.Let("a", nil, b.IntLit(20)),
		b.Let("b", nil, b.Ident("a")),
		b.Let("c", nil, b.Ident("b")),
		b.Let("e", nil, b.Ident("c")),
		b.Let("d", nil, b.FloatLit(20.20)),
	}, b.Ident("a"))
}

// binaryExample builds:
//
//	fn test(): i32 {
//	  let a: i32 = 20;
//	  let b = a;
//	  let c = (50 + b);
//	  a
//	}
func binaryExample(b *decl.Builder) *decl.FuncDecl {
	return b.Func("test", decl.I32Type, []decl.Stmt{
		b.Let("a", decl.I32Type, b.IntLit(20)),
		b.Let("b", nil, b.Ident("a")),
		b.Let("c", nil, b.Binary("+", b.IntLit(50), b.Ident("b"))),
	}, b.Ident("a"))
}

func main() {
	flag.Parse()

	b := decl.NewBuilder()
	fn := aliasChainExample(b)
	if *useBinaryExample {
		fn = binaryExample(b)
	}

	if err := infer.New(infer.DefaultPolicy).InferFunction(fn); err != nil {
		log.Fatalf("inference failed: %v", err)
	}
	decl.PPrint(fn)
}
