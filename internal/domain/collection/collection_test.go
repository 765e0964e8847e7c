package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/domain/collection"
)

func TestSettings_Resolve(t *testing.T) {
	legacyTrue := true
	legacyFalse := false
	collapse := collection.BehaviorCollapse
	def := collection.BehaviorDefault

	cases := []struct {
		name     string
		settings collection.Settings
		want     collection.CompletedTaskBehavior
	}{
		{"empty settings keep in place", collection.Settings{}, collection.BehaviorKeepInPlace},
		{"legacy true collapses", collection.Settings{CollapseCompleted: &legacyTrue}, collection.BehaviorCollapse},
		{"legacy false keeps in place", collection.Settings{CollapseCompleted: &legacyFalse}, collection.BehaviorKeepInPlace},
		{
			"explicit behavior wins over legacy",
			collection.Settings{CompletedTaskBehavior: &collapse, CollapseCompleted: &legacyFalse},
			collection.BehaviorCollapse,
		},
		{
			"explicit null means global default",
			collection.Settings{CompletedTaskBehavior: &def, CollapseCompleted: &legacyTrue},
			collection.BehaviorDefault,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.settings.Resolve())
		})
	}
}

func TestSettings_Equivalent(t *testing.T) {
	legacyFalse := false
	keep := collection.BehaviorKeepInPlace

	assert.True(t, collection.Settings{}.Equivalent(collection.Settings{CollapseCompleted: &legacyFalse}))
	assert.True(t, collection.Settings{}.Equivalent(collection.Settings{CompletedTaskBehavior: &keep}))

	legacyTrue := true
	assert.False(t, collection.Settings{}.Equivalent(collection.Settings{CollapseCompleted: &legacyTrue}))
}

func TestValidateDate(t *testing.T) {
	require.NoError(t, collection.ValidateDate(collection.TypeDaily, "2026-02-01"))
	require.NoError(t, collection.ValidateDate(collection.TypeMonthly, "2026-02"))
	require.NoError(t, collection.ValidateDate(collection.TypeYearly, "2026"))
	require.NoError(t, collection.ValidateDate(collection.TypeCustom, ""))
	require.NoError(t, collection.ValidateDate(collection.TypeLog, ""))

	assert.Error(t, collection.ValidateDate(collection.TypeDaily, "2026-2-1"))
	assert.Error(t, collection.ValidateDate(collection.TypeDaily, ""))
	assert.Error(t, collection.ValidateDate(collection.TypeMonthly, "2026-02-01"))
	assert.Error(t, collection.ValidateDate(collection.TypeYearly, "26"))
	assert.Error(t, collection.ValidateDate(collection.TypeCustom, "2026-02-01"))
	assert.Error(t, collection.ValidateDate(collection.TypeTracker, "2026"))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, collection.NameKey("  Groceries  "), collection.NameKey("groceries"))
	assert.Equal(t, "weekly review", collection.NameKey("Weekly   Review"))
}
