package random_test

import (
	"fmt"

	"github.com/hasbyte1/go-utils/random"
)

func ExampleIntRange() {
	n, _ := random.IntRange(5, 5)
	fmt.Println(n)

	_, err := random.IntRange(10, 1)
	fmt.Println(err)
	// Output:
	// 5
	// random: min must not be greater than max: min 10, max 1
}

func ExampleNewKeyed() {
	a := random.ShuffleFrom(random.NewKeyed([]byte("fixture")), []int{1, 2, 3, 4, 5})
	b := random.ShuffleFrom(random.NewKeyed([]byte("fixture")), []int{1, 2, 3, 4, 5})
	fmt.Println(fmt.Sprint(a) == fmt.Sprint(b))
	// Output: true
}
