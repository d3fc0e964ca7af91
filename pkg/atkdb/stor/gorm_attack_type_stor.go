package stor

import (
	"errors"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"gorm.io/gorm"
)

type GormAttackTypeStor struct {
	db *gorm.DB
}

func NewGormAttackTypeStor(db *gorm.DB) *GormAttackTypeStor {
	return &GormAttackTypeStor{db: db}
}

// FindIDByLabel looks up the id of the attack type named label.
func (s *GormAttackTypeStor) FindIDByLabel(label string) (int, bool, error) {
	var attackType atkmodel.AttackType
	err := s.db.Where("attack_type_name = ?", label).Take(&attackType).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return 0, false, nil
	case err != nil:
		return 0, false, err
	default:
		return attackType.ID, true, nil
	}
}

func (s *GormAttackTypeStor) CreateAttackType(attackType *atkmodel.AttackType) (*atkmodel.AttackType, error) {
	if err := s.db.Create(attackType).Error; err != nil {
		return nil, err
	}

	return attackType, nil
}

func (s *GormAttackTypeStor) ListAttackTypes() ([]atkmodel.AttackType, error) {
	attackTypes := []atkmodel.AttackType{}
	result := s.db.Order("id_attack_type").Find(&attackTypes)
	return attackTypes, result.Error
}
