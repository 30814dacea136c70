package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"k8s.io/utils/clock"
)

func main() {
	err := Execute(os.Args, Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
		Clock:  clock.RealClock{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "nextcron: %s\n", err.Error())
		os.Exit(1)
	}
}
