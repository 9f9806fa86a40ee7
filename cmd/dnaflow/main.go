// cmd/dnaflow/main.go
package main

import (
	"dnaflow/internal/app"
	"dnaflow/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
