package main

import (
	"log"

	"empiria-profile/cmd"
	_ "empiria-profile/migrations"
)

func main() {
	if err := cmd.Start(); err != nil {
		log.Fatal(err)
	}
}
