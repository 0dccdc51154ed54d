package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	Name    string
	Version string
	Size    int64
}

func TestTableFormatter(t *testing.T) {
	out := NewTableFormatter().Format([]row{
		{Name: "foo", Version: "1.2~dev0", Size: 10},
		{Name: "longername", Version: "0.9", Size: 123456},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Name")
	require.Contains(t, lines[0], "Version")
	require.Contains(t, lines[0], "Size")
	require.Contains(t, lines[1], "foo")
	require.Contains(t, lines[1], "1.2~dev0")
	require.Contains(t, lines[2], "longername")
	require.Contains(t, lines[2], "123456")
}

func TestTableFormatterEmptySlice(t *testing.T) {
	out := NewTableFormatter().Format([]row{})
	require.Contains(t, out, "Name")
	require.Len(t, strings.Split(out, "\n"), 1)
}

func TestJSONFormatter(t *testing.T) {
	out := NewJSONFormatter().Format([]row{{Name: "foo", Version: "1.2", Size: 1}})

	var decoded []row
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "foo", decoded[0].Name)
	require.Equal(t, "1.2", decoded[0].Version)
}
