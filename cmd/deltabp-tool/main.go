package main

import "github.com/fraugster/deltabp/cmd/deltabp-tool/cmds"

func main() {
	cmds.Execute()
}
