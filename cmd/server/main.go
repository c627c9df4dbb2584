package main

import "github.com/Raymagdonal/kpi-ctb/internal/app/server"

func main() {
	server.Run()
}
