package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	rec := time.Unix(1700000000, 42)

	assert.Equal(t,
		"codec,op=decode,error=0 duration=1500i 1700000000000000042",
		line("decode", 1500*time.Microsecond, &rec, false))
	assert.Equal(t,
		"codec,op=encode,error=1 duration=0i 1700000000000000042",
		line("encode", 300*time.Nanosecond, &rec, true))
}
