package stor

import (
	"sync"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
)

// InMemoryAttackStor keeps attack rows in insertion order and rebuilds
// variants through the factory, the same way the gorm stor does.
type InMemoryAttackStor struct {
	// Can be used to simulate an error by setting it.
	ErrorToReturn error

	mu             sync.Mutex
	rows           []atkmodel.Attack
	lastID         int
	attackTypeStor AttackTypeStor
	factory        *attack.Factory
}

func NewInMemoryAttackStor(attackTypeStor AttackTypeStor, factory *attack.Factory) *InMemoryAttackStor {
	return &InMemoryAttackStor{attackTypeStor: attackTypeStor, factory: factory}
}

func (s *InMemoryAttackStor) CreateAttack(a attack.Attack) (bool, error) {
	if a == nil {
		return false, ErrNilAttack
	}

	attackTypeID, found, err := s.attackTypeStor.FindIDByLabel(a.Type())
	if err != nil || !found {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return false, s.ErrorToReturn
	}

	attrs := a.Attrs()
	s.lastID++
	s.rows = append(s.rows, atkmodel.Attack{
		ID:           s.lastID,
		AttackTypeID: attackTypeID,
		Name:         attrs.Name,
		Power:        attrs.Power,
		Accuracy:     attrs.Accuracy,
		Element:      attrs.Element,
		Description:  attrs.Description,
	})
	attrs.ID = s.lastID

	return true, nil
}

func (s *InMemoryAttackStor) GetAttackByID(id int) (attack.Attack, bool, error) {
	rows, err := s.snapshot()
	if err != nil {
		return nil, false, err
	}

	for _, row := range rows {
		if row.ID != id {
			continue
		}

		a, err := s.toAttack(row)
		if err != nil {
			return nil, false, err
		}
		return a, true, nil
	}

	return nil, false, nil
}

func (s *InMemoryAttackStor) ListAttacks() ([]attack.Attack, error) {
	rows, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	attacks := make([]attack.Attack, 0, len(rows))
	for _, row := range rows {
		a, err := s.toAttack(row)
		if err != nil {
			return nil, err
		}
		attacks = append(attacks, a)
	}

	return attacks, nil
}

func (s *InMemoryAttackStor) snapshot() ([]atkmodel.Attack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	return append([]atkmodel.Attack{}, s.rows...), nil
}

// toAttack resolves the type label the way the join does for the gorm stor.
func (s *InMemoryAttackStor) toAttack(row atkmodel.Attack) (attack.Attack, error) {
	attackTypes, err := s.attackTypeStor.ListAttackTypes()
	if err != nil {
		return nil, err
	}

	label := ""
	for _, t := range attackTypes {
		if t.ID == row.AttackTypeID {
			label = t.Name
			break
		}
	}

	return s.factory.Instantiate(label, row.ID, row.Name, row.Power, row.Accuracy, row.Element, row.Description)
}
