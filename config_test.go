package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_TolerancesAreOrdered(t *testing.T) {
	cfg := DefaultConfig()
	// each tolerance should be tighter (smaller) than the next.
	assert.Less(t, cfg.PivotEps, cfg.ZeroEps)
	assert.Less(t, cfg.ZeroEps, cfg.FracEps)
	assert.Less(t, cfg.FracEps, cfg.IntEps)
}
