package main

// Version is set via ldflags during build
var Version = "dev"

func main() {
	SetVersion(Version)
	Execute()
}
