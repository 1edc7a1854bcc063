package main

import "github.com/dbsmedya/debtqueue/cmd/debtqueue/cmd"

func main() {
	cmd.Execute()
}
