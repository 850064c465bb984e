package main

import (
	"context"
	"io"
	"os"
	"time"

	relnotes "github.com/alnah/go-relnotes"
	"github.com/alnah/go-relnotes/internal/gitref"
)

// Generator is the page generation service used by the CLI.
type Generator interface {
	Generate(ctx context.Context, input relnotes.Input) (*relnotes.Result, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
// Includes I/O, time, git access, and generator construction.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Getwd        func() (string, error)
	HeadTag      func(path string) (string, error)
	NewGenerator func(opts ...relnotes.Option) (Generator, error)
}

// DefaultEnv returns production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getwd:   os.Getwd,
		HeadTag: gitref.HeadTag,
		NewGenerator: func(opts ...relnotes.Option) (Generator, error) {
			return relnotes.NewGenerator(opts...)
		},
	}
}
