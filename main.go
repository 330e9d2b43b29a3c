package main

import "github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/cmd"

func main() {
	cmd.Execute()
}
