package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtrValue(t *testing.T) {
	p := Ptr("agency")
	assert.Equal(t, "agency", *p)
	assert.Equal(t, "agency", Value(p))

	var missing *int
	assert.Equal(t, 0, Value(missing))
}
