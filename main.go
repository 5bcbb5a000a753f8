package main

import "github.com/fincast/portfolio-calculator/cmd"

func main() {
	cmd.Execute()
}
