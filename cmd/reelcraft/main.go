package main

import (
	"reelcraft/cmd/handlers"
)

func main() {
	handlers.Execute()
}
