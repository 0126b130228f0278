// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slv talks to the external finite-element solver. The solver is
// a separate executable that reads a model document on stdin and writes
// a results document on stdout.
package slv

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Jeroen124/FERS-core/mdl"
	"github.com/Jeroen124/FERS-core/res"
)

// ExecError means the solver process could not be run or exited with a
// non-zero status
type ExecError struct {
	Cmd    string // the attempted command
	Stderr string // captured stderr, possibly empty
	Err    error  // underlying error
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return io.Sf("solver %q failed: %v; stderr: %s", e.Cmd, e.Err, e.Stderr)
	}
	return io.Sf("solver %q failed: %v", e.Cmd, e.Err)
}

// ResponseError means the solver ran but its output failed validation
// against the results schema
type ResponseError struct {
	Cmd string // the command that produced the output
	Err error  // validation error
}

func (e *ResponseError) Error() string {
	return io.Sf("solver %q returned an invalid results document: %v", e.Cmd, e.Err)
}

// Gateway runs the external solver. The call blocks until the solver
// exits; timeouts are the caller's concern.
type Gateway struct {
	Cmd  string   // solver executable
	Args []string // extra arguments
}

// execute feeds input to the solver and validates its output
func (o *Gateway) execute(input []byte) (*res.Bundle, error) {
	cmd := exec.Command(o.Cmd, o.Args...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &ExecError{Cmd: o.Cmd, Stderr: stderr.String(), Err: err}
	}
	bundle, err := res.DecodeBundle(stdout.Bytes())
	if err != nil {
		return nil, &ResponseError{Cmd: o.Cmd, Err: err}
	}
	return bundle, nil
}

// RunFile reads a model document from a JSON file, runs the solver on it
// and returns the validated results
func (o *Gateway) RunFile(path string) (*res.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q: %v", path, err)
	}
	return o.execute(data)
}

// Run encodes the model in memory, runs the solver and attaches the
// validated results to the model
func (o *Gateway) Run(model *mdl.Model) (*res.Bundle, error) {
	data, err := model.MarshalJSON()
	if err != nil {
		return nil, chk.Err("cannot encode model: %v", err)
	}
	bundle, err := o.execute(data)
	if err != nil {
		return nil, err
	}
	model.Results = bundle
	return bundle, nil
}
