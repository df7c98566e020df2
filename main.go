package main

import (
	"github.com/serejina/gonurbs/cmd"
)

func main() {
	cmd.Execute()
}
