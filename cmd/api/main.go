package main

import (
	"log"
	"os"
	"strconv"

	"papertrade/cmd"

	_ "github.com/lib/pq"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", p, err)
		}
	}

	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
