// Command zamani-demo runs the ZamaniChat hero demo in the terminal.
package main

import "github.com/zamanilabs/zamani-demo/internal/commands"

func main() {
	commands.Execute()
}
