package linopt_test

import (
	"fmt"

	"github.com/frostworks/advent2025/linopt"
	"github.com/frostworks/advent2025/machine"
)

func ExampleMinimize() {
	m, err := machine.Parse("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
	if err != nil {
		fmt.Println(err)
		return
	}

	presses, err := linopt.Minimize(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(presses)
	// Output: 10
}
