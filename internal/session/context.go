// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mattlk13/pulumi/internal/config"
	"github.com/Mattlk13/pulumi/internal/schema"
)

var (
	// ErrNotInitialized indicates no sdkgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an sdkgen project (sdkgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file referenced by config doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrInvalidSchema indicates the schema file exists but couldn't be parsed.
	ErrInvalidSchema = errors.New("invalid schema package")
)

// ConfigFileName is the name of the sdkgen configuration file.
const ConfigFileName = "sdkgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and loaded schema package.
type Context struct {
	// Config is the parsed project configuration.
	Config *config.Config

	// Package is the loaded schema package.
	Package *schema.Package
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the sdkgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	schemaPath := cfg.Schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(cwd, schemaPath)
	}
	if _, statErr := os.Stat(schemaPath); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaPath)
	}

	pkg, err := schema.Load(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	sessionCtx := &Context{
		Config:  cfg,
		Package: pkg,
	}

	return context.WithValue(ctx, contextKey{}, sessionCtx), nil
}

// From extracts the sdkgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
