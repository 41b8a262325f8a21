package main

import "github.com/oshokin/feathr-version/cmd/feathr-version/cmd"

func main() {
	cmd.Execute()
}
