// Command server runs the Steam inventory viewer.
package main

import "os"

func main() {
	os.Exit(execute())
}
