package reduce_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sqrtsum/reduce"
)

func ExampleScalar() {
	fmt.Println(reduce.Scalar([]float64{0, 1, 4, 9}))
	// Output: 6
}

func ExampleVectorized() {
	// three values: the whole input goes through the masked tail step
	fmt.Println(reduce.Vectorized([]float64{0, 1, 4}))
	// Output: 3
}

func ExamplePartition() {
	ranges, err := reduce.Partition(10, 3)
	if err != nil {
		panic(err)
	}
	for _, r := range ranges {
		fmt.Printf("[%d,%d) ", r.Start, r.End())
	}
	fmt.Println()
	// Output: [0,4) [4,8) [8,10)
}

func ExampleParallel() {
	x, err := reduce.AllocAligned(10)
	if err != nil {
		panic(err)
	}
	for i := range x {
		x[i] = 1
	}
	sum, err := reduce.Parallel(x, 3, reduce.ModeVectorized)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: 10
}

func ExampleCoordinator_Reduce() {
	c, err := reduce.NewCoordinator(reduce.WithWorkerLimit(2))
	if err != nil {
		panic(err)
	}
	x := make([]float64, 100)
	for i := range x {
		x[i] = 4
	}
	res, err := c.Reduce(x, 4, reduce.ModeScalar)
	fmt.Println(res.Sum, res.Launched, len(res.Partitions), errors.Is(err, reduce.ErrThreadLaunch))
	// Output: 112 2 4 true
}
