package veccmp_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/evoguard/veccmp"
)

func ExampleVectorEq() {
	observed := mat.NewVecDense(3, []float64{0.1, 0.2, 0.3})

	fmt.Println(veccmp.VectorEq(observed, []float64{0.1, 0.2, 0.3}))
	fmt.Println(veccmp.VectorEq(observed, []float64{0.1, 0.2, 0.4}))
	// Output:
	// true
	// false
}
