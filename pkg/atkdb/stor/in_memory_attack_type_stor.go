package stor

import (
	"fmt"
	"sync"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
)

type InMemoryAttackTypeStor struct {
	// Can be used to simulate an error by setting it.
	ErrorToReturn error

	mu          sync.Mutex
	attackTypes []atkmodel.AttackType
	lastID      int
}

func NewInMemoryAttackTypeStor(attackTypes []atkmodel.AttackType) *InMemoryAttackTypeStor {
	s := &InMemoryAttackTypeStor{}
	for _, t := range attackTypes {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
		s.attackTypes = append(s.attackTypes, t)
	}

	return s
}

func (s *InMemoryAttackTypeStor) FindIDByLabel(label string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return 0, false, s.ErrorToReturn
	}

	for _, t := range s.attackTypes {
		if t.Name == label {
			return t.ID, true, nil
		}
	}

	return 0, false, nil
}

func (s *InMemoryAttackTypeStor) CreateAttackType(attackType *atkmodel.AttackType) (*atkmodel.AttackType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	for _, t := range s.attackTypes {
		if t.Name == attackType.Name {
			return nil, fmt.Errorf("attack type '%s' already exists", attackType.Name)
		}
	}

	s.lastID++
	attackType.ID = s.lastID
	s.attackTypes = append(s.attackTypes, *attackType)

	return attackType, nil
}

func (s *InMemoryAttackTypeStor) ListAttackTypes() ([]atkmodel.AttackType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ErrorToReturn != nil {
		return nil, s.ErrorToReturn
	}

	return append([]atkmodel.AttackType{}, s.attackTypes...), nil
}
