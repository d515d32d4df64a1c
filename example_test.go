package minivac_test

import (
	"fmt"

	"github.com/batandwa-bbd/minivac"
)

func Example() {
	eng := minivac.New()
	for _, line := range []string{"3+3", "ans*2", "f(x) = x^2", "f(3)+1", "preans"} {
		r, err := eng.Run(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 6
	// 12
	// 0
	// 10
	// 12
}
