package main

import "github.com/me-yeatz/Beamsafe-Mypro/cmd"

func main() {
	cmd.Execute()
}
