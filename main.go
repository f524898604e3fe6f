package main

import "github.com/melisasvr/dayflow/cmd"

func main() {
	cmd.Execute()
}
