package main

import "github.com/tenangapp/tenang_backend/cmd"

func main() {
	cmd.Execute()
}
