package transform_test

import (
	"fmt"

	"github.com/minokit/minokit/pkg/mino"
	"github.com/minokit/minokit/pkg/mino/transform"
)

func ExampleRotate90() {
	// A T piece: three across, one below the center.
	s := mino.Shape{
		{mino.Filled(mino.Purple), mino.Filled(mino.Purple), mino.Filled(mino.Purple)},
		{{}, mino.Filled(mino.Purple), {}},
	}

	fmt.Println(s)
	fmt.Println("--")
	fmt.Println(transform.Rotate90(s))
	// Output:
	// ppp
	// .p.
	// --
	// .p
	// pp
	// .p
}

func ExampleCombine() {
	// Drop an O piece next to a shifted second O. The shapes are padded to a
	// common grid and merged cell by cell.
	o := mino.Shape{
		{mino.Filled(mino.Yellow), mino.Filled(mino.Yellow)},
		{mino.Filled(mino.Yellow), mino.Filled(mino.Yellow)},
	}
	shifted, err := transform.Shift(2, 1, o)
	if err != nil {
		fmt.Println("shift:", err)
		return
	}

	if transform.Overlaps(o, shifted) {
		fmt.Println("shapes overlap, cannot combine")
		return
	}
	fmt.Println(transform.Combine(o, shifted))
	// Output:
	// yy..
	// yyyy
	// ..yy
}

func ExamplePadTo() {
	bar := mino.Shape{{mino.Filled(mino.Cyan), mino.Filled(mino.Cyan)}}

	padded, err := transform.PadTo(4, 2, bar)
	if err != nil {
		fmt.Println("pad:", err)
		return
	}
	fmt.Println(padded)
	// Output:
	// cc..
	// ....
}
