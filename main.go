package main

import "github.com/jobguard/go-jobguard/cmd"

func main() {
	cmd.Execute()
}
