package stor

import (
	"errors"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"gorm.io/gorm"
)

const attackWithTypeColumns = "id_attack, power, accuracy, element, attack_name, attack_description, attack_type_name"

type GormAttackStor struct {
	db             *gorm.DB
	attackTypeStor AttackTypeStor
	factory        *attack.Factory
}

func NewGormAttackStor(db *gorm.DB, attackTypeStor AttackTypeStor, factory *attack.Factory) *GormAttackStor {
	return &GormAttackStor{db: db, attackTypeStor: attackTypeStor, factory: factory}
}

func (s *GormAttackStor) CreateAttack(a attack.Attack) (bool, error) {
	if a == nil {
		return false, ErrNilAttack
	}

	attackTypeID, found, err := s.attackTypeStor.FindIDByLabel(a.Type())
	if err != nil || !found {
		return false, err
	}

	attrs := a.Attrs()
	row := atkmodel.Attack{
		AttackTypeID: attackTypeID,
		Name:         attrs.Name,
		Power:        attrs.Power,
		Accuracy:     attrs.Accuracy,
		Element:      attrs.Element,
		Description:  attrs.Description,
	}

	result := s.db.Create(&row)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 || row.ID == 0 {
		return false, nil
	}

	attrs.ID = row.ID
	return true, nil
}

func (s *GormAttackStor) GetAttackByID(id int) (attack.Attack, bool, error) {
	var row atkmodel.AttackWithType
	err := s.attacksWithType().Where("id_attack = ?", id).Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	a, err := s.toAttack(row)
	if err != nil {
		return nil, false, err
	}

	return a, true, nil
}

func (s *GormAttackStor) ListAttacks() ([]attack.Attack, error) {
	var rows []atkmodel.AttackWithType
	if err := s.attacksWithType().Find(&rows).Error; err != nil {
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

// attacksWithType starts a query over attack joined with attack_type. Table
// names go through the naming strategy so a schema prefix is honored.
func (s *GormAttackStor) attacksWithType() *gorm.DB {
	attackTable := s.db.NamingStrategy.TableName("Attack")
	attackTypeTable := s.db.NamingStrategy.TableName("AttackType")
	return s.db.Table(attackTable).
		Select(attackWithTypeColumns).
		Joins("JOIN " + attackTypeTable + " USING (id_attack_type)")
}

func (s *GormAttackStor) toAttack(row atkmodel.AttackWithType) (attack.Attack, error) {
	return s.factory.Instantiate(row.AttackTypeName, row.ID, row.Name, row.Power, row.Accuracy, row.Element, row.Description)
}
