package main

import "github.com/heal-clinic/heal_backend/cmd"

func main() {
	cmd.Execute()
}
