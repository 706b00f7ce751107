package fixvec_test

import (
	"fmt"

	"github.com/hupe1980/fixvec"
)

func Example() {
	right := fixvec.V3[float32](1, 0, 0)
	forward := fixvec.V3[float32](0, 1, 0)

	// Right-hand rule: X cross Y points up.
	fmt.Println(fixvec.Cross(right, forward))
	fmt.Println(fixvec.Cross(forward, right))
	// Output:
	// [0, 0, 1]
	// [0, 0, -1]
}

func ExampleVec3_Add() {
	v := fixvec.V3(1.0, 2.0, 3.0).Add(fixvec.V3(4.0, 5.0, 6.0))
	fmt.Println(v)
	// Output: [5, 7, 9]
}

func ExampleVec3_Normalized() {
	v := fixvec.V3[float32](3, 0, 4)
	fmt.Println(v.Normalized())
	// Output: [0.6, 0, 0.8]
}

func ExampleVec3_Dot() {
	x := fixvec.V3(1.0, 0.0, 0.0)
	y := fixvec.V3(0.0, 1.0, 0.0)
	fmt.Println(x.Dot(y))
	// Output: 0
}
