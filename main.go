package main

import "todo-list-api.com/todo-list-api/cmd"

func main() {
	cmd.Execute()
}
