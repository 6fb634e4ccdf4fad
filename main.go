package main

import "place-share-backend/cmd"

func main() {
	cmd.Run()
}
