package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
	FontTall   = 0x01 // double height only
)

// Ticket builds an ESC/POS byte stream for thermal receipt printers.
type Ticket struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewTicket creates a new ESC/POS ticket with the given character width
// and sends the initialize command. Common widths: 32 for 58mm paper,
// 48 for 80mm paper.
func NewTicket(charWidth int) *Ticket {
	if charWidth <= 0 {
		charWidth = 48
	}
	t := &Ticket{width: charWidth}
	t.buf.Write([]byte{ESC, '@'})
	return t
}

// LineFeed sends a line feed.
func (t *Ticket) LineFeed() *Ticket {
	t.buf.WriteByte(LF)
	return t
}

// FeedLines sends n line feeds.
func (t *Ticket) FeedLines(n int) *Ticket {
	for i := 0; i < n; i++ {
		t.buf.WriteByte(LF)
	}
	return t
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (t *Ticket) SetAlign(align int) *Ticket {
	t.buf.Write([]byte{ESC, 'a', byte(align)})
	return t
}

// SetBold enables or disables bold text.
func (t *Ticket) SetBold(on bool) *Ticket {
	b := byte(0)
	if on {
		b = 1
	}
	t.buf.Write([]byte{ESC, 'E', b})
	return t
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, or FontTall.
func (t *Ticket) SetFontSize(size byte) *Ticket {
	t.buf.Write([]byte{GS, '!', size})
	return t
}

// Text writes a line of text followed by a line feed.
func (t *Ticket) Text(s string) *Ticket {
	t.buf.WriteString(s)
	t.buf.WriteByte(LF)
	return t
}

// TextF writes a formatted line of text followed by a line feed.
func (t *Ticket) TextF(format string, args ...interface{}) *Ticket {
	t.buf.WriteString(fmt.Sprintf(format, args...))
	t.buf.WriteByte(LF)
	return t
}

// Separator prints a full-width separator line.
func (t *Ticket) Separator(char byte) *Ticket {
	t.buf.WriteString(strings.Repeat(string(char), t.width))
	t.buf.WriteByte(LF)
	return t
}

// KeyValue prints a left-aligned key and right-aligned value on the same
// line, truncating the key if the pair would overflow the paper width.
func (t *Ticket) KeyValue(key, value string) *Ticket {
	maxKey := t.width - len(value) - 1
	if maxKey < 1 {
		maxKey = 1
	}
	if len(key) > maxKey {
		key = key[:maxKey]
	}
	spaces := t.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	t.buf.WriteString(key)
	t.buf.WriteString(strings.Repeat(" ", spaces))
	t.buf.WriteString(value)
	t.buf.WriteByte(LF)
	return t
}

// ItemLine prints a receipt item line: qty x name, then right-aligned total.
// Long product names are truncated so the total stays on the same line.
func (t *Ticket) ItemLine(qty int, name, total string) *Ticket {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	maxPrefix := t.width - len(total) - 1
	if maxPrefix < 1 {
		maxPrefix = 1
	}
	if len(prefix) > maxPrefix {
		prefix = prefix[:maxPrefix]
	}
	spaces := t.width - len(prefix) - len(total)
	if spaces < 1 {
		spaces = 1
	}
	t.buf.WriteString(prefix)
	t.buf.WriteString(strings.Repeat(" ", spaces))
	t.buf.WriteString(total)
	t.buf.WriteByte(LF)
	return t
}

// PartialCut sends the partial paper cut command.
func (t *Ticket) PartialCut() *Ticket {
	t.buf.Write([]byte{GS, 'V', 0x01})
	return t
}

// Bytes returns the accumulated ESC/POS byte stream.
func (t *Ticket) Bytes() []byte {
	return t.buf.Bytes()
}
