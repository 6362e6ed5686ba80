package scan_test

import (
	"fmt"

	"github.com/katalvlaran/regionscan/gridgraph"
	"github.com/katalvlaran/regionscan/scan"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRun
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4×4 block of "A" next to a column of "B":
//	  A A A A B
//	  A A A A B
//	  A A A A B
//	  A A A A B
//
// Each cell contributes area 1 and one unit of perimeter per edge; the
// region price is area × perimeter.
//
//	A: area 16, perimeter 16 → 256
//	B: area  4, perimeter 10 →  40
//
// Complexity: O(W·H) time, O(W) row state.
func ExampleRun() {
	g, _ := gridgraph.New([][]byte{
		[]byte("AAAAB"),
		[]byte("AAAAB"),
		[]byte("AAAAB"),
		[]byte("AAAAB"),
	})

	m := scan.Run(g, nil, func(c scan.Cell[struct{}]) (fence, struct{}) {
		return fence{Area: 1, Perimeter: c.Edges()}, struct{}{}
	})
	for f := range m.Regions() {
		fmt.Printf("area=%d perimeter=%d cost=%d\n", f.Area, f.Perimeter, f.Cost())
	}
	fmt.Println("total:", scan.Sum(m.Regions(), fence.Cost))
	// Output:
	// area=16 perimeter=16 cost=256
	// area=4 perimeter=10 cost=40
	// total: 296
}
