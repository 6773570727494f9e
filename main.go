package main

import "github.com/sweataroy942-eng/NutriLens-Tracker/cmd/nutrilens"

func main() {
	nutrilens.Execute()
}
