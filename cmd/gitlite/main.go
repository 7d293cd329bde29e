// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/gitlite/cmd/gitlite/cmd"
)

func main() {
	cmd.Execute()
}
