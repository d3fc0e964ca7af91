package stor

import (
	"errors"
	"testing"

	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/attack"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetAttackRoundTrips(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		a := chatouille()
		require.False(t, a.IsPersisted())

		created, err := tc.stors.AttackStor.CreateAttack(a)
		require.NoErrorf(t, err, "CreateAttack failed: %s", err)
		require.True(t, created)
		require.NotZero(t, a.ID, "CreateAttack should set the id in place")

		got, found, err := tc.stors.AttackStor.GetAttackByID(a.ID)
		require.NoErrorf(t, err, "GetAttackByID(%d) failed: %s", a.ID, err)
		require.True(t, found)
		require.IsType(t, &attack.PhysicalFormulaAttack{}, got)
		require.Equal(t, a.Base, *got.Attrs())
		require.True(t, attack.Equal(a, got))
	})
}

func TestCreateAttackUnknownTypeIsRejected(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		tc.mustCreateAttack(chatouille())
		before, err := tc.stors.AttackStor.ListAttacks()
		require.NoError(t, err)

		// "Status" is known to the factory but has no attack_type row.
		tc.factory.Register("Status", func(base attack.Base) attack.Attack { return &statusAttack{Base: base} })
		a := &statusAttack{Base: attack.Base{Name: "growl", Element: "Normal"}}

		created, err := tc.stors.AttackStor.CreateAttack(a)
		require.NoError(t, err)
		require.False(t, created)
		require.Zero(t, a.ID)

		after, err := tc.stors.AttackStor.ListAttacks()
		require.NoError(t, err)
		require.Len(t, after, len(before))
	})
}

func TestGetAttackByIDMissingIsNotAnError(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		a, found, err := tc.stors.AttackStor.GetAttackByID(4242)
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, a)
	})
}

func TestListAttacksReturnsEveryRow(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		attacks, err := tc.stors.AttackStor.ListAttacks()
		require.NoError(t, err)
		require.NotNil(t, attacks)
		require.Empty(t, attacks)

		want := []attack.Attack{
			tc.mustCreateAttack(chatouille()),
			tc.mustCreateAttack(&attack.SpecialFormulaAttack{Base: attack.Base{Name: "flamethrower", Power: 90, Accuracy: 100, Element: "Fire", Description: "burns"}}),
			tc.mustCreateAttack(&attack.FixedDamageAttack{Base: attack.Base{Name: "dragon rage", Power: 40, Accuracy: 100, Element: "Dragon", Description: "always 40"}}),
		}

		attacks, err = tc.stors.AttackStor.ListAttacks()
		require.NoError(t, err)
		require.Len(t, attacks, 3)

		for i := range want {
			require.Truef(t, attack.Equal(want[i], attacks[i]), "attack %d: want %+v, got %+v", i, want[i], attacks[i])
		}
	})
}

func TestCreateAttackAssignsDistinctIDs(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		a1 := tc.mustCreateAttack(chatouille())
		a2 := tc.mustCreateAttack(chatouille())
		require.NotEqual(t, a1.Attrs().ID, a2.Attrs().ID)
	})
}

func TestAttackTypeStor(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		id, found, err := tc.stors.AttackTypeStor.FindIDByLabel(attack.SpecialLabel)
		require.NoError(t, err)
		require.True(t, found)
		require.NotZero(t, id)

		_, found, err = tc.stors.AttackTypeStor.FindIDByLabel("Psychic")
		require.NoError(t, err)
		require.False(t, found)

		attackTypes, err := tc.stors.AttackTypeStor.ListAttackTypes()
		require.NoError(t, err)
		require.Len(t, attackTypes, 3)
		require.Equal(t, attack.PhysicalLabel, attackTypes[0].Name)
	})
}

func TestStoreErrorsPropagate(t *testing.T) {
	tc := newInMemoryTestCase(t)
	errStore := errors.New("connection lost")

	tc.stors.AttackTypeStor.(*InMemoryAttackTypeStor).ErrorToReturn = errStore
	created, err := tc.stors.AttackStor.CreateAttack(chatouille())
	require.ErrorIs(t, err, errStore)
	require.False(t, created)

	tc.stors.AttackTypeStor.(*InMemoryAttackTypeStor).ErrorToReturn = nil
	tc.stors.AttackStor.(*InMemoryAttackStor).ErrorToReturn = errStore

	_, _, err = tc.stors.AttackStor.GetAttackByID(1)
	require.ErrorIs(t, err, errStore)

	_, err = tc.stors.AttackStor.ListAttacks()
	require.ErrorIs(t, err, errStore)
}

func TestGormStorHonorsClosedDB(t *testing.T) {
	tc := newGormTestCase(t)
	sqlDB, err := tc.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = tc.stors.AttackStor.ListAttacks()
	require.Error(t, err)

	_, _, err = tc.stors.AttackStor.GetAttackByID(1)
	require.Error(t, err)
}

type statusAttack struct {
	attack.Base
}

func (*statusAttack) Type() string { return "Status" }

func TestCreateAttackNil(t *testing.T) {
	forEachStor(t, func(t *testing.T, tc *testCase) {
		created, err := tc.stors.AttackStor.CreateAttack(nil)
		require.ErrorIs(t, err, ErrNilAttack)
		require.False(t, created)
	})
}

func TestGormCreateAttackInsertFailurePropagates(t *testing.T) {
	tc := newGormTestCase(t)
	require.NoError(t, tc.db.Migrator().DropTable(&atkmodel.Attack{}))

	a := chatouille()
	created, err := tc.stors.AttackStor.CreateAttack(a)
	require.Error(t, err, "insert into a missing attack table should fail")
	require.False(t, created)
	require.Zero(t, a.ID)
}
