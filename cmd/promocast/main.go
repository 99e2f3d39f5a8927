package main

import (
	"promocast/cmd/handlers"
	"promocast/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
