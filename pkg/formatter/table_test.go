package formatter

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestTableString(t *testing.T) {
	table := NewTable([]string{"NAME", "SIZE"})
	table.AddRow([]string{"photo.png", "1.0 KB"})
	table.AddRow([]string{"é.png"})

	want := "+-----------+--------+\n" +
		"| NAME      | SIZE   |\n" +
		"+-----------+--------+\n" +
		"| photo.png | 1.0 KB |\n" +
		"| é.png     |        |\n" +
		"+-----------+--------+"
	assert.Equal(t, table.String(), want)
}

func TestTableWithoutHeaders(t *testing.T) {
	assert.Equal(t, NewTable(nil).String(), "")
}
