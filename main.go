package main

import "github.com/jsphweid/autochart/cmd"

func main() {
	cmd.Execute()
}
