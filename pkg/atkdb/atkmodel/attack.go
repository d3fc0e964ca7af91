package atkmodel

// Attack is a row in the attack table. Table names come from the naming
// strategy configured on the gorm.DB so the schema prefix can vary.
type Attack struct {
	ID           int    `gorm:"column:id_attack;primaryKey;autoIncrement"`
	AttackTypeID int    `gorm:"column:id_attack_type;not null"`
	Name         string `gorm:"column:attack_name;not null"`
	Power        int    `gorm:"column:power"`
	Accuracy     int    `gorm:"column:accuracy"`
	Element      string `gorm:"column:element"`
	Description  string `gorm:"column:attack_description"`
}

// AttackWithType is the result of joining an attack row with its type.
type AttackWithType struct {
	ID             int    `gorm:"column:id_attack"`
	Power          int    `gorm:"column:power"`
	Accuracy       int    `gorm:"column:accuracy"`
	Element        string `gorm:"column:element"`
	Name           string `gorm:"column:attack_name"`
	Description    string `gorm:"column:attack_description"`
	AttackTypeName string `gorm:"column:attack_type_name"`
}
