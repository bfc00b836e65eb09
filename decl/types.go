package decl

// Type is a concrete primitive type tag. The language only knows four of
// them: two integer widths and two float widths.
type Type struct {
	Name string
}

// Singletons for the primitive tags. Callers should use these rather than
// constructing their own; equality is by name so foreign instances still
// compare correctly.
var (
	I32Type = &Type{Name: "i32"}
	I64Type = &Type{Name: "i64"}
	F32Type = &Type{Name: "f32"}
	F64Type = &Type{Name: "f64"}
)

// IsInt reports whether the tag is in the integer class.
func (t *Type) IsInt() bool {
	switch t.Name {
	case "i32", "i64":
		return true
	}
	return false
}

// IsFloat reports whether the tag is in the float class.
func (t *Type) IsFloat() bool {
	switch t.Name {
	case "f32", "f64":
		return true
	}
	return false
}

// Equals checks tag equality.
func (t *Type) Equals(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.Name == other.Name
}

func (t *Type) String() string {
	if t == nil {
		return "<nil_type>"
	}
	return t.Name
}

func (t *Type) PrettyPrint(cp CodePrinter) {
	cp.Print(TypeString(t))
}
