// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package abits implements a fixed-width, arbitrary-bit-width integer core:
a borrowed bit-slice view (Bits) over a run of digits, three storage
flavors that own the backing digits (inline, external, capacitive), and
the arithmetic, logical, comparison, shift, multiplication, division and
string/byte conversion algorithms that operate on Bits.

Unlike a big.Int, a Bits value never grows: its bit width is fixed for
its lifetime and every operation works modulo 2**bw. Unlike a fixed-size
machine integer, bw is not restricted to 8/16/32/64 — it can be any value
>= 1, and need not be a multiple of the digit width.

The zero value of Bits is not useful on its own; Bits values are obtained
by dereferencing one of the storage types:

	s, _ := NewInline(12)   // 12-bit, zero-valued, stack-resident
	x := s.View()

	e, _ := NewExternal(65) // 65-bit, heap-resident
	y := e.View()

Arithmetic expressions are written as a sequence of individual method
calls, with each call corresponding to an operation. The receiver denotes
the result and the method arguments are the operation's operands. For
instance, given two Bits values x and y of the same width, the invocation

	x.Add(y)

computes x+y in place and stores the result back in x. Unlike *big.Int or
*Decimal, there is no separate destination operand: Bits never
reallocates, so the receiver is always the destination.

All Bits arguments to a method must share the receiver's bit width unless
the method's documentation states otherwise (resize, field and byte-slice
conversions are the exceptions). A mismatch returns ErrWidthMismatch
rather than panicking: Bits operations never panic in the default build.

Notational convention: the receiver is the result; other Bits parameters
are named x, y, rhs, lhs, n, d, and so on but never z, mirroring the
convention used throughout math/big.
*/
package abits
