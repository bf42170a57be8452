package main

import "github.com/avstrong/hotelrates/internal/cli"

func main() {
	cli.Execute()
}
