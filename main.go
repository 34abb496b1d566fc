package main

import "github.com/minhvu/cutcoach/cmd/cutcoach"

func main() {
	cutcoach.Execute()
}
