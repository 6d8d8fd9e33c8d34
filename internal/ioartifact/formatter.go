package ioartifact

import (
	"bytes"
	"context"
	"errors"
	"go/format"
	"os/exec"
	"strings"
)

// Formatter post-processes generated Go source.
type Formatter interface {
	Format(ctx context.Context, src []byte) ([]byte, error)
}

// NewFormatter returns GoFormatter for an empty command, otherwise an
// ExecFormatter running the command.
func NewFormatter(command string) Formatter {
	args := strings.Fields(command)
	if len(args) == 0 {
		return GoFormatter{}
	}
	return ExecFormatter{Name: args[0], Args: args[1:]}
}

// GoFormatter formats source with go/format, the same way gofmt does.
type GoFormatter struct{}

// Format implements Formatter.
func (GoFormatter) Format(_ context.Context, src []byte) ([]byte, error) {
	res, err := format.Source(src)
	if err != nil {
		return nil, FormatSourceError("go/format", err)
	}
	return res, nil
}

// ExecFormatter pipes source through an external command.
type ExecFormatter struct {
	Name string
	Args []string
}

// Format implements Formatter.
func (f ExecFormatter) Format(ctx context.Context, src []byte) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.Name, f.Args...)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.Join(err, errors.New(msg))
		}
		return nil, FormatSourceError(f.Name, err)
	}
	if stdout.Len() == 0 {
		return nil, FormatSourceError(f.Name, errors.New("empty output"))
	}
	return stdout.Bytes(), nil
}
