package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledListsUpMigrationsInOrder(t *testing.T) {
	names, err := Bundled()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	assert.Equal(t, "0001_init.up.sql", names[0])
	for _, n := range names {
		assert.True(t, strings.HasSuffix(n, ".up.sql"), n)
	}
}

func TestInitMigrationCreatesCoreTables(t *testing.T) {
	b, err := migrationsFS.ReadFile("migrations/0001_init.up.sql")
	require.NoError(t, err)
	sql := string(b)

	for _, table := range []string{"igrejas", "profiles", "eventos", "evento_lotes", "inscricoes", "transacoes_financeiras", "pedidos_oracao", "testemunhos", "liturgia_itens", "webauthn_credenciais"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}
