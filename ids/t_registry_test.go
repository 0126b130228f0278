// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ids

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. monotonic allocation")

	reg := New()
	a := reg.Next(KindNode)
	b := reg.Next(KindNode)
	c := reg.Next(KindMember)
	io.Pforan("a=%d b=%d c=%d\n", a, b, c)
	chk.IntAssert(a, 1)
	chk.IntAssert(b, 2)
	chk.IntAssert(c, 1) // kinds are independent

	reg.ResetAll()
	chk.IntAssert(reg.Next(KindNode), 1)
	chk.IntAssert(reg.Next(KindMember), 1)
}

func Test_registry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry02. observed ids never collide")

	reg := New()
	for _, id := range []int{3, 7, 12} {
		reg.Observe(KindSection, id)
	}
	next := reg.Next(KindSection)
	io.Pforan("next = %d\n", next)
	chk.IntAssert(next, 13)

	// observing a lower id does not move the counter backwards
	reg.Observe(KindSection, 5)
	chk.IntAssert(reg.Next(KindSection), 14)
}

func Test_registry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry03. explicit id wins, else auto-assign")

	reg := New()
	chk.IntAssert(reg.Resolve(KindLoadCase, 9), 9)
	chk.IntAssert(reg.Resolve(KindLoadCase, 0), 10)
	chk.IntAssert(reg.Resolve(KindLoadCase, 2), 2) // explicit low id is kept
	chk.IntAssert(reg.Resolve(KindLoadCase, 0), 11)
}
