package main

import "github.com/cmmoran/kotlinmodelgen/cmd"

func main() {
	cmd.Execute()
}
