// cmd/primecheck/main.go
package main

import (
	"primecheck/internal/app"
	"primecheck/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
