package atkmodel

type AttackType struct {
	ID          int    `gorm:"column:id_attack_type;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:attack_type_name;uniqueIndex;not null" json:"name"`
	Description string `gorm:"column:attack_type_description" json:"description"`
}
