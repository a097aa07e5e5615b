package main

import "github.com/NahomAnteneh/my-svn/cmd"

func main() {
	cmd.Execute()
}
