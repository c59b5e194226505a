package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket_SendsInitialize(t *testing.T) {
	raw := NewTicket(32).Bytes()
	assert.Equal(t, []byte{ESC, '@'}, raw[:2])
}

func TestNewTicket_DefaultsWidth(t *testing.T) {
	tk := NewTicket(0)
	assert.Equal(t, 48, tk.width)
}

func TestKeyValue_PadsToWidth(t *testing.T) {
	tk := NewTicket(32)
	tk.KeyValue("Total", "1,250.00")

	line := lastLine(t, tk.Bytes())
	assert.Len(t, line, 32)
	assert.True(t, strings.HasPrefix(line, "Total"))
	assert.True(t, strings.HasSuffix(line, "1,250.00"))
}

func TestKeyValue_TruncatesLongKey(t *testing.T) {
	tk := NewTicket(32)
	tk.KeyValue(strings.Repeat("k", 40), "9.99")

	line := lastLine(t, tk.Bytes())
	assert.True(t, strings.HasSuffix(line, "9.99"))
	// truncated key + one space + value
	assert.Len(t, line, 32)
}

func TestItemLine_TruncatesLongName(t *testing.T) {
	tk := NewTicket(32)
	tk.ItemLine(2, "Paracetamol Extra Strength Caplets 500mg", "1,000.00")

	line := lastLine(t, tk.Bytes())
	assert.True(t, strings.HasPrefix(line, "2x Paracetamol"))
	assert.True(t, strings.HasSuffix(line, "1,000.00"))
	assert.Len(t, line, 32)
}

func TestSeparator_FullWidth(t *testing.T) {
	tk := NewTicket(32)
	tk.Separator('-')

	line := lastLine(t, tk.Bytes())
	assert.Equal(t, strings.Repeat("-", 32), line)
}

func TestPartialCut(t *testing.T) {
	raw := NewTicket(32).PartialCut().Bytes()
	assert.True(t, bytes.HasSuffix(raw, []byte{GS, 'V', 0x01}))
}

// lastLine returns the text of the last LF-terminated line in the stream,
// skipping the two-byte initialize sequence at the start.
func lastLine(t *testing.T, raw []byte) string {
	t.Helper()
	require.GreaterOrEqual(t, len(raw), 2)
	lines := bytes.Split(raw[2:], []byte{LF})
	require.GreaterOrEqual(t, len(lines), 2)
	return string(lines[len(lines)-2])
}
