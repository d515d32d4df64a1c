//go:build go1.18
// +build go1.18

package minivac_test

import (
	"testing"

	"github.com/batandwa-bbd/minivac"
)

func FuzzRun(f *testing.F) {
	f.Add("x=5")
	f.Add("f(x)=x^2")
	f.Add("1/0.0001")
	f.Fuzz(func(t *testing.T, s string) {
		minivac.New().Run(s)
	})
}
