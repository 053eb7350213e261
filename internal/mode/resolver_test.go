package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]Spec{
		{Pattern: `\.go\'`, Mode: "go-mode"},
		{Pattern: `\.GO\'`, Mode: "shouty-go-mode"},
		{Pattern: `\.c\'`, Mode: "c-mode"},
		{Pattern: `\.tar\'`, Mode: "tar-mode"},
		{Pattern: `\.txt\'`, Mode: "text-mode"},
		{Pattern: `\.log\'`, Nested: &Spec{Mode: "log-view-mode"}},
		{Pattern: `\.[a-z]+\'`, Mode: "fundamental-mode"},
	})
	require.NoError(t, err)
	return table
}

func TestResolve_FirstMatchWins(t *testing.T) {
	table := testTable(t)
	strict := Options{CaseSensitive: true}

	id, ok := Resolve("main.go", table, strict)
	assert.True(t, ok)
	assert.Equal(t, ID("go-mode"), id)

	id, ok = Resolve("notes.md", table, strict)
	assert.True(t, ok)
	assert.Equal(t, ID("fundamental-mode"), id)
}

func TestResolve_CaseSensitiveStrictPassFirst(t *testing.T) {
	table := testTable(t)

	// Strict pass finds the upper-case entry before any folding happens.
	id, ok := Resolve("MAIN.GO", table, Options{CaseSensitive: true, CaseFoldFallback: true})
	assert.True(t, ok)
	assert.Equal(t, ID("shouty-go-mode"), id)
}

func TestResolve_CaseSensitiveNoFallback(t *testing.T) {
	table := testTable(t)

	_, ok := Resolve("README.TXT", table, Options{CaseSensitive: true, CaseFoldFallback: false})
	assert.False(t, ok)
}

func TestResolve_CaseSensitiveWithFallback(t *testing.T) {
	table := testTable(t)

	id, ok := Resolve("README.TXT", table, Options{CaseSensitive: true, CaseFoldFallback: true})
	assert.True(t, ok)
	assert.Equal(t, ID("text-mode"), id)
}

func TestResolve_CaseInsensitivePlatformSinglePass(t *testing.T) {
	table := testTable(t)
	opts := Options{CaseSensitive: false}

	// With folding from the start, the first entry matches upper-case names.
	for _, name := range []string{"main.go", "MAIN.GO", "Main.Go", "mAiN.gO"} {
		id, ok := Resolve(name, table, opts)
		assert.True(t, ok, name)
		assert.Equal(t, ID("go-mode"), id, name)
	}
}

func TestResolve_NestedEntryUnwraps(t *testing.T) {
	table := testTable(t)

	id, ok := Resolve("/var/log/app.log", table, Options{CaseSensitive: true})
	assert.True(t, ok)
	assert.Equal(t, ID("log-view-mode"), id)
}

func TestResolve_StripsVersionAndRemote(t *testing.T) {
	table := testTable(t)
	opts := Options{CaseSensitive: true}

	id, ok := Resolve("/ssh:host:/srv/backup.tar.~2~", table, opts)
	assert.True(t, ok)
	assert.Equal(t, ID("tar-mode"), id)

	id, ok = Resolve("main.c~", table, opts)
	assert.True(t, ok)
	assert.Equal(t, ID("c-mode"), id)
}

func TestResolve_RemotePrefixNeverMatches(t *testing.T) {
	table, err := NewTable([]Spec{{Pattern: "\\`/ssh:", Mode: "remote-mode"}})
	require.NoError(t, err)

	_, ok := Resolve("/ssh:host:/etc/hosts", table, Options{CaseSensitive: true})
	assert.False(t, ok)
}

func TestResolve_NoMatch(t *testing.T) {
	table := testTable(t)

	_, ok := Resolve("Makefile", table, Options{CaseSensitive: true, CaseFoldFallback: true})
	assert.False(t, ok)

	_, ok = Resolve("anything", nil, Options{})
	assert.False(t, ok)
}

func TestResolver_BindsTableAndOptions(t *testing.T) {
	table := testTable(t)
	r := NewResolver(table, Options{CaseSensitive: true, CaseFoldFallback: true})

	id, ok := r.Resolve("NOTES.TXT")
	assert.True(t, ok)
	assert.Equal(t, ID("text-mode"), id)
	assert.Same(t, table, r.Table())
}

func TestOptionsFor(t *testing.T) {
	assert.Equal(t, Options{CaseSensitive: false, CaseFoldFallback: true}, optionsFor("windows", true))
	assert.Equal(t, Options{CaseSensitive: true, CaseFoldFallback: false}, optionsFor("linux", false))
	assert.Equal(t, Options{CaseSensitive: true, CaseFoldFallback: true}, optionsFor("darwin", true))
}
