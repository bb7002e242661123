package main

import (
	"github.com/zgz/product-service/cmd"
)

func main() {
	cmd.Start()
}
