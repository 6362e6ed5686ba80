package scan_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/regionscan/scan"
)

func TestSum(t *testing.T) {
	seq := slices.Values([]fence{{Area: 2, Perimeter: 3}, {Area: 4, Perimeter: 5}})
	assert.Equal(t, 26, scan.Sum(seq, fence.Cost))
	assert.InDelta(t, 1.5, scan.Sum(seq, func(f fence) float64 { return float64(f.Area) / 4 }), 1e-12)
	assert.Zero(t, scan.Sum(slices.Values([]fence(nil)), fence.Cost))
}

func TestFold(t *testing.T) {
	seq := slices.Values([]fence{{Area: 1}, {Area: 5}, {Area: 3}})
	largest := scan.Fold(seq, 0, func(acc int, f fence) int { return max(acc, f.Area) })
	assert.Equal(t, 5, largest)
	assert.Equal(t, fence{Area: 9}, scan.Fold(seq, fence{}, fence.Merge))
}
