package stor

import (
	"errors"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"gorm.io/gorm"
)

var ErrNilAttack = errors.New("nil attack")

// AttackStor persists attacks and rebuilds the typed variant when reading
// them back.
type AttackStor interface {
	// CreateAttack inserts a and sets its ID. It returns false, leaving the ID
	// unset, when a's type label is unknown or no row was inserted. A nil a
	// returns ErrNilAttack.
	CreateAttack(a attack.Attack) (bool, error)

	// GetAttackByID returns false when no attack has that id.
	GetAttackByID(id int) (attack.Attack, bool, error)

	ListAttacks() ([]attack.Attack, error)
}

type AttackTypeStor interface {
	FindIDByLabel(label string) (int, bool, error)
	CreateAttackType(attackType *atkmodel.AttackType) (*atkmodel.AttackType, error)
	ListAttackTypes() ([]atkmodel.AttackType, error)
}

type Stors struct {
	AttackStor     AttackStor
	AttackTypeStor AttackTypeStor
}

func NewGormStors(db *gorm.DB, factory *attack.Factory) *Stors {
	attackTypeStor := NewGormAttackTypeStor(db)
	return &Stors{
		AttackStor:     NewGormAttackStor(db, attackTypeStor, factory),
		AttackTypeStor: attackTypeStor,
	}
}

func NewInMemoryStors(factory *attack.Factory) *Stors {
	attackTypeStor := NewInMemoryAttackTypeStor(nil)
	return &Stors{
		AttackStor:     NewInMemoryAttackStor(attackTypeStor, factory),
		AttackTypeStor: attackTypeStor,
	}
}
