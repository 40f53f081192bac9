package main

import "contentmgr/cmd/contentmgr-cli/cmd"

func main() {
	cmd.Execute()
}
