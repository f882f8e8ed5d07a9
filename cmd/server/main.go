// cmd/server/main.go
package main

import (
	"go-bank-ledger/app"
)

// @title           Bank Ledger API
// @version         1.0
// @description     In-memory banking ledger exposed over HTTP.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
