// Copyright 2024 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memcmd

import (
	"fmt"
	"testing"

	"github.com/u-root/memtool/pkg/mem"
)

type mapOp struct {
	address uintptr
	n       int
	data    []byte
	err     error
}

// fakeSpace hands out scripted regions and checks that they are requested
// in order and released again.
type fakeSpace struct {
	t    *testing.T
	ops  []mapOp
	open int
}

func opstr(o *mapOp) string {
	return fmt.Sprintf("{map @ %08x, %d bytes}", o.address, o.n)
}

func (f *fakeSpace) Map(a uintptr, n int) (mem.Region, error) {
	if len(f.ops) == 0 {
		f.t.Fatalf("Unexpected map of %d bytes on %08x", n, a)
	}
	o := f.ops[0]
	f.ops = f.ops[1:]
	if o.address != a || o.n != n {
		f.t.Errorf("Expected %s, got map of %d bytes on %08x", opstr(&o), n, a)
	}
	if o.err != nil {
		return nil, o.err
	}
	f.open++
	return &fakeRegion{f, o.data}, nil
}

func (f *fakeSpace) Close() error {
	return nil
}

// ExpectMap queues a successful map and returns the backing bytes.
func (f *fakeSpace) ExpectMap(a uintptr, n int) []byte {
	b := make([]byte, n)
	f.ops = append(f.ops, mapOp{a, n, b, nil})
	return b
}

func (f *fakeSpace) FailMap(a uintptr, n int, err error) {
	f.ops = append(f.ops, mapOp{a, n, nil, err})
}

// Done checks that every expected map happened and was closed.
func (f *fakeSpace) Done() {
	if len(f.ops) != 0 {
		f.t.Errorf("%d expected maps did not happen, next %s", len(f.ops), opstr(&f.ops[0]))
	}
	if f.open != 0 {
		f.t.Errorf("%d regions were not closed", f.open)
	}
}

type fakeRegion struct {
	f *fakeSpace
	b []byte
}

func (r *fakeRegion) Bytes() []byte {
	return r.b
}

func (r *fakeRegion) Close() error {
	r.f.open--
	return nil
}

func fakeMemory(t *testing.T) *fakeSpace {
	return &fakeSpace{t: t}
}
