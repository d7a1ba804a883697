package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type testTable struct {
	headers []string
	rows    [][]string
}

func (t testTable) Headers() []string { return t.headers }
func (t testTable) Rows() [][]string  { return t.rows }

func TestPrintTable(t *testing.T) {
	table := testTable{
		headers: []string{"Id", "Key Name"},
		rows:    [][]string{{"1", "HARDWARE_VIEW"}, {"3", "VIRTUAL_GUEST_VIEW"}},
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, table))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "KEY NAME")
	assert.Contains(t, out, "HARDWARE_VIEW")
	assert.Contains(t, out, "VIRTUAL_GUEST_VIEW")
}

func TestPrinter_Formats(t *testing.T) {
	type item struct {
		ID   int    `json:"id" yaml:"id"`
		Name string `json:"name" yaml:"name"`
	}
	data := []item{{ID: 1, Name: "ops"}}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON).Print(data))
	assert.JSONEq(t, `[{"id":1,"name":"ops"}]`, buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatYAML).Print(data))
	assert.Equal(t, "- id: 1\n  name: ops\n", buf.String())

	// table falls back to JSON for non-renderers
	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(data))
	assert.JSONEq(t, `[{"id":1,"name":"ops"}]`, buf.String())
}

func TestPrinter_TableRenderer(t *testing.T) {
	table := testTable{headers: []string{"Name"}, rows: [][]string{{"ops"}}}

	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)
	require.NoError(t, p.Print(table))
	assert.Contains(t, buf.String(), "ops")
	assert.Equal(t, FormatTable, p.Format())
}

func TestPrinter_Messages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	p.Println("Role", 100, "deleted.")
	p.Printf("Group %d linked to role %d.\n", 200, 100)
	assert.Equal(t, "Role 100 deleted.\nGroup 200 linked to role 100.\n", buf.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewPrinter(&buf, Format("xml")).Print(1)
	assert.Error(t, err)
}
