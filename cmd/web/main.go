package main

import "talentbridge_backend/internal/app"

func main() {
	app.Run()
}
