package stor

import (
	"testing"

	"github.com/ensai-tp/attackdb/pkg/atkdb"
	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testCase struct {
	*testing.T
	db      *gorm.DB
	factory *attack.Factory
	stors   *Stors
}

// newGormTestCase returns stors over a fresh in-memory sqlite database seeded
// with the Physical, Special and Fixed attack types.
func newGormTestCase(t *testing.T) *testCase {
	db, err := atkdb.OpenSqliteInMemory()
	require.NoErrorf(t, err, "OpenSqliteInMemory failed: %s", err)

	err = atkdb.SeedAttackTypes(db, attack.PhysicalLabel, attack.SpecialLabel, attack.FixedLabel)
	require.NoErrorf(t, err, "SeedAttackTypes failed: %s", err)

	factory := attack.NewFactory()
	return &testCase{
		T:       t,
		db:      db,
		factory: factory,
		stors:   NewGormStors(db, factory),
	}
}

func newInMemoryTestCase(t *testing.T) *testCase {
	factory := attack.NewFactory()
	tc := &testCase{T: t, factory: factory, stors: NewInMemoryStors(factory)}

	for _, label := range []string{attack.PhysicalLabel, attack.SpecialLabel, attack.FixedLabel} {
		tc.mustCreateAttackType(label)
	}

	return tc
}

func (tc *testCase) mustCreateAttackType(label string) {
	_, err := tc.stors.AttackTypeStor.CreateAttackType(&atkmodel.AttackType{Name: label})
	require.NoErrorf(tc.T, err, "Failed creating attack type %s: %s", label, err)
}

func (tc *testCase) mustCreateAttack(a attack.Attack) attack.Attack {
	created, err := tc.stors.AttackStor.CreateAttack(a)
	require.NoErrorf(tc.T, err, "CreateAttack(%s) failed: %s", a.Attrs().Name, err)
	require.Truef(tc.T, created, "CreateAttack(%s) returned false", a.Attrs().Name)
	return a
}

func chatouille() *attack.PhysicalFormulaAttack {
	return &attack.PhysicalFormulaAttack{Base: attack.Base{
		Name:        "chatouille",
		Power:       50,
		Accuracy:    90,
		Element:     "Normal",
		Description: "guili-guilis",
	}}
}

// forEachStor runs fn against both the gorm and the in-memory stors.
func forEachStor(t *testing.T, fn func(t *testing.T, tc *testCase)) {
	t.Run("Gorm", func(t *testing.T) { fn(t, newGormTestCase(t)) })
	t.Run("InMemory", func(t *testing.T) { fn(t, newInMemoryTestCase(t)) })
}
