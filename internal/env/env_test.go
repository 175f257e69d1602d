package env

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := strings.Join([]string{
		"# stored credentials",
		"",
		"TOKEN=abc.def.ghi",
		"  SERVER =http://localhost:80",
		"EMPTY=",
	}, "\n")

	cfg := make(map[string]string)
	require.NoError(t, NewDecoder(strings.NewReader(input)).Decode(&cfg))
	assert.Equal(t, map[string]string{
		"TOKEN":  "abc.def.ghi",
		"SERVER": "http://localhost:80",
		"EMPTY":  "",
	}, cfg)
}

func TestDecodeInvalidLine(t *testing.T) {
	cfg := make(map[string]string)
	err := NewDecoder(strings.NewReader("not a pair")).Decode(&cfg)
	require.Error(t, err)
}

func TestEncodeIsSorted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(map[string]string{
		"TOKEN":  "t",
		"SERVER": "s",
	}))
	assert.Equal(t, "SERVER=s\nTOKEN=t\n", buf.String())
}
