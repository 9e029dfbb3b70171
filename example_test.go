package spanJSON_test

import (
	"fmt"

	"spanJSON"
)

func ExampleGenerate() {
	data := []int64{0, 1, 2, 3}

	buf := make([]byte, 64)
	n := spanJSON.Generate(buf, spanJSON.Object(
		spanJSON.Field("received_data", spanJSON.Ints(data)),
	))
	fmt.Println(n)
	fmt.Println(string(buf[:n]))
	// Output:
	// 31
	// {"received_data": [0, 1, 2, 3]}
}

func ExampleGenerator_Generate() {
	g := spanJSON.Generator{Compact: true}

	buf := make([]byte, 64)
	n := g.Generate(buf, spanJSON.Object(
		spanJSON.Field("received_data", spanJSON.Ints([]int64{0, 1, 2, 3})),
	))
	fmt.Println(string(buf[:n]))
	// Output: {"received_data":[0,1,2,3]}
}

func ExampleArray() {
	buf := make([]byte, 64)
	n := spanJSON.Generate(buf, spanJSON.Array(
		spanJSON.Int(1),
		spanJSON.String("two"),
		spanJSON.Bool(true),
		spanJSON.Null(),
	))
	fmt.Println(string(buf[:n]))
	// Output: [1, "two", true, null]
}

func ExampleHex() {
	// A bare primitive root produces just the scalar text.
	buf := make([]byte, 8)
	n := spanJSON.Generate(buf, spanJSON.Hex(15))
	fmt.Println(string(buf[:n]))
	// Output: "F"
}

func ExampleMeasure() {
	v := spanJSON.Object(
		spanJSON.Field("sensor", spanJSON.String("thermo")),
		spanJSON.Field("ok", spanJSON.Bool(true)),
	)

	// Measure plus one terminator byte is the smallest buffer
	// Generate accepts.
	buf := make([]byte, spanJSON.Measure(v)+1)
	n := spanJSON.Generate(buf, v)
	fmt.Println(string(buf[:n]))

	if spanJSON.Generate(buf[:len(buf)-1], v) == 0 {
		fmt.Println("one byte less fails")
	}
	// Output:
	// {"sensor": "thermo", "ok": true}
	// one byte less fails
}
