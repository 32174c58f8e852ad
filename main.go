package main

import (
	"production-app/config"
	"production-app/database"
)

func main() {
	config.LoadEnv()
	database.InitDB()
}
