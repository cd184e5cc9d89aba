package main

import "github.com/inovacc/sshcm/cmd"

func main() {
	cmd.Execute()
}
