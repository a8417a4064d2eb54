package automaton

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFAWriteDOT(t *testing.T) {
	d := newMinDFA(t, "ab")
	var buf bytes.Buffer
	require.NoError(t, d.WriteDOT(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `empty -> s0 [label = "start"];`)
	assert.Contains(t, out, "node [shape = doublecircle] s2;")
	assert.Contains(t, out, `s0 -> s1 [label = "a"];`)
	assert.Contains(t, out, `s1 -> s2 [label = "b"];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestNFAWriteDOT(t *testing.T) {
	n := newNFA(t, "a")
	var buf bytes.Buffer
	require.NoError(t, n.WriteDOT(&buf))
	out := buf.String()
	assert.Contains(t, out, "node [shape = doublecircle] s3;")
	assert.Contains(t, out, `s0 -> s1 [label = "ε"];`)
	assert.Contains(t, out, `s1 -> s2 [label = "a"];`)
	assert.Contains(t, out, `s2 -> s3 [label = "ε"];`)
}

func TestWriteDOTNilGraph(t *testing.T) {
	var buf bytes.Buffer
	var n *NFA
	var g Graph = n
	assert.Equal(t, ErrNilGraph, g.WriteDOT(&buf))
	var d *DFA
	assert.Equal(t, ErrNilGraph, d.WriteDOT(&buf))
	assert.Zero(t, buf.Len())
	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "nil.dot"), g))
}

func TestSymbolLabel(t *testing.T) {
	assert.Equal(t, "ε", symbolLabel(Epsilon))
	assert.Equal(t, "x", symbolLabel('x'))
	assert.Equal(t, `\"`, symbolLabel('"'))
	assert.Equal(t, `\\`, symbolLabel('\\'))
	assert.Equal(t, `\\x0a`, symbolLabel('\n'))
	assert.Equal(t, `\\xff`, symbolLabel(0xff))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfa.dot")
	require.NoError(t, WriteFile(path, newMinDFA(t, "a|b")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph G {")
	//
	bad := filepath.Join(t.TempDir(), "missing", "dfa.dot")
	assert.Error(t, WriteFile(bad, newMinDFA(t, "a")))
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}
