package main

import (
	"fmt"
	"os"
)

// @title Animal Shelter API
// @version 1.0
// @description Registro de usuarios, animales y adopciones de un refugio.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
