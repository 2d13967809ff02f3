package geocoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinParts(t *testing.T) {
	assert.Equal(t, "Moorenstr. 5, Düsseldorf, 40225, Germany",
		JoinParts("Moorenstr. 5", "Düsseldorf", "40225", "Germany"))
	assert.Equal(t, "Düsseldorf, Germany", JoinParts("", "Düsseldorf", "  ", "Germany"))
	assert.Equal(t, "", JoinParts("", "   "))
}
