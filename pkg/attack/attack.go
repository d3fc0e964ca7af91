// Package attack holds the in-memory attack variants and the factory that
// builds the right variant for a stored type label.
package attack

const (
	PhysicalLabel = "Physical"
	SpecialLabel  = "Special"
	FixedLabel    = "Fixed"
)

// Attack is implemented by every attack variant. Attrs gives access to the
// attributes shared by all variants so stores can read them and set the ID
// once the attack has been persisted.
type Attack interface {
	Type() string
	Attrs() *Base
}

// Base is the attribute set common to all attacks. An ID of 0 means the
// attack has not been persisted yet.
type Base struct {
	ID          int
	Name        string
	Power       int
	Accuracy    int
	Element     string
	Description string
}

func (b *Base) Attrs() *Base {
	return b
}

func (b *Base) IsPersisted() bool {
	return b.ID != 0
}

// PhysicalFormulaAttack deals damage computed from the physical stats.
type PhysicalFormulaAttack struct {
	Base
}

func (*PhysicalFormulaAttack) Type() string { return PhysicalLabel }

// SpecialFormulaAttack deals damage computed from the special stats.
type SpecialFormulaAttack struct {
	Base
}

func (*SpecialFormulaAttack) Type() string { return SpecialLabel }

// FixedDamageAttack always deals its power as damage.
type FixedDamageAttack struct {
	Base
}

func (*FixedDamageAttack) Type() string { return FixedLabel }

// Equal reports whether two attacks are the same variant with identical
// attributes.
func Equal(a, b Attack) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Type() == b.Type() && *a.Attrs() == *b.Attrs()
}
