// Command motion plays scene documents for the motion animation engine,
// headless or in a window, and exposes the engine's matrix and style helpers.
package main

func main() {
	Execute()
}
