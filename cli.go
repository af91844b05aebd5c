//go:build cli
// +build cli

package main

import (
	"ativos.GO/cmd"
	"ativos.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
