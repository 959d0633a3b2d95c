/*
Copyright © 2025 ShaikM36
*/
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ShaikM36/tds-virtual-ta/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
}
