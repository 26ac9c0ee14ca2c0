package main

// The wasm entry points live in exports.go; the runtime never calls main.
func main() {}
