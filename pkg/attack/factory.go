package attack

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

var ErrUnknownAttackType = errors.New("unknown attack type")

// Constructor builds an attack variant from its shared attributes.
type Constructor func(base Base) Attack

type Factory struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewFactory returns a factory that knows the Physical, Special and Fixed
// variants.
func NewFactory() *Factory {
	f := &Factory{constructors: make(map[string]Constructor)}
	f.Register(PhysicalLabel, func(base Base) Attack { return &PhysicalFormulaAttack{Base: base} })
	f.Register(SpecialLabel, func(base Base) Attack { return &SpecialFormulaAttack{Base: base} })
	f.Register(FixedLabel, func(base Base) Attack { return &FixedDamageAttack{Base: base} })
	return f
}

// Register adds or replaces the constructor used for label.
func (f *Factory) Register(label string, c Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[label] = c
}

func (f *Factory) Labels() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	labels := make([]string, 0, len(f.constructors))
	for label := range f.constructors {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

func (f *Factory) Instantiate(label string, id int, name string, power, accuracy int, element, description string) (Attack, error) {
	return f.New(label, Base{
		ID:          id,
		Name:        name,
		Power:       power,
		Accuracy:    accuracy,
		Element:     element,
		Description: description,
	})
}

// New builds the variant registered for label. An unregistered label returns
// an error wrapping ErrUnknownAttackType.
func (f *Factory) New(label string, base Base) (Attack, error) {
	f.mu.RLock()
	c, ok := f.constructors[label]
	f.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownAttackType, "label '%s'", label)
	}

	return c(base), nil
}
