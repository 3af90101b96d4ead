//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "simpletalk"

// Default target to run when none is specified
var Default = Build

// Build builds the simpletalk binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/simpletalk")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/simpletalk")
}

// Run starts the HTTP API locally
func Run() error {
	mg.Deps(Build)
	return sh.RunV("./"+binary, "serve")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestRace runs all tests with the race detector
func TestRace() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Integration runs the tests that call the real APIs. Needs OPENAI_API_KEY.
func Integration() error {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return sh.RunV("go", "test", "-count=1", "./...")
}

// Lint runs go vet and gofmt checks
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	out, err := sh.Output("gofmt", "-l", "cmd", "internal")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
