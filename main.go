package main

import (
	"os"

	"holidayapi/commands"
)

// @title                       Public Holidays API
// @version                     1.0
// @description                 Public holidays by year, month, date and type, backed by Nager.Date.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
