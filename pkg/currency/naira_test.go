package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦0.00", FormatNaira(0))
	assert.Equal(t, "₦500.00", FormatNaira(500))
	assert.Equal(t, "₦2,550.00", FormatNaira(2550))
	assert.Equal(t, "₦1,234,567.89", FormatNaira(1234567.89))
	assert.Equal(t, "-₦120.50", FormatNaira(-120.5))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "2,550.00", FormatPlain(2550))
	assert.Equal(t, "0.00", FormatPlain(0))
}

func TestKoboConversions(t *testing.T) {
	assert.Equal(t, 25.5, FromKobo(2550))
	assert.Equal(t, int64(2550), ToKobo(25.5))

	// Round-trip values that are not exactly representable in binary
	assert.Equal(t, int64(1999), ToKobo(19.99))
	assert.Equal(t, int64(10), ToKobo(0.1))
}
