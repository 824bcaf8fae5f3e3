package main

import "github.com/inovacc/studyplan/cmd"

func main() {
	cmd.Execute()
}
