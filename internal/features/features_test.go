package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "ESLINT_WITH_PRETTIER", NormalizeKey("eslint-with-prettier"))
	assert.Equal(t, "TS", NormalizeKey("ts"))
	assert.Equal(t, "VUE_ROUTER", NormalizeKey("vue-router"))
}

func TestNormalizeDefaults(t *testing.T) {
	vars := Features{}.Normalize()

	assert.Equal(t, false, vars["TYPESCRIPT"])
	assert.Equal(t, false, vars["TS"])
	assert.Equal(t, "development", vars["NODE_ENV"])
	_, hasWithTests := vars["WITH_TESTS"]
	assert.True(t, hasWithTests)
}

func TestNormalizeSetsAliases(t *testing.T) {
	var f Features
	f.Set("ts")
	f.Set("vue-router")

	vars := f.Normalize()
	assert.Equal(t, true, vars["TYPESCRIPT"])
	assert.Equal(t, true, vars["TS"])
	assert.Equal(t, true, vars["ROUTER"])
	assert.Equal(t, true, vars["VUE_ROUTER"])
}

func TestProdMode(t *testing.T) {
	f := Features{Prod: true}
	assert.Equal(t, "production", f.Mode())
	assert.Equal(t, "production", f.Normalize()["NODE_ENV"])
}

func TestExtraPassthrough(t *testing.T) {
	var f Features
	f.Set("tailwind-css")

	assert.True(t, f.Extra["tailwind-css"])
	assert.Equal(t, true, f.Normalize()["TAILWIND_CSS"])
	assert.Equal(t, []string{"tailwind-css"}, f.Enabled())
}

func TestEnabledSorted(t *testing.T) {
	f := Features{TypeScript: true, Eslint: true, Pinia: true}
	assert.Equal(t, []string{"eslint", "pinia", "typescript"}, f.Enabled())
}
