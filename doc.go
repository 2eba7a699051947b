/* Command hullpaint runs a program image on a small integer machine whose
output drives a hull painting robot, then reports how many hull panels the
robot painted at least once.

The machine

Memory is a flat sequence of signed integers, addressed from 0, that the
running program may freely rewrite. Memory has no end: cells never written
read as 0, and writing past the end simply grows memory.

Each instruction is a single cell whose low two decimal digits select the
operation, followed by its operand cells. The remaining higher digits give
one addressing mode per operand, read right to left, with missing digits
meaning mode 0:

	0  position   the operand cell holds the address of the value
	1  immediate  the operand cell holds the value itself
	2  relative   like position, offset by the relative base

Operands that name a place to write are never dereferenced: the operand cell
is the address, offset by the relative base in mode 2.

	 1  add        a b dst    dst = a + b
	 2  multiply   a b dst    dst = a * b
	 3  input      dst        dst = next input value
	 4  output     a          emit a
	 5  jump-true  a b        if a != 0 continue at b
	 6  jump-false a b        if a == 0 continue at b
	 7  less       a b dst    dst = a < b ? 1 : 0
	 8  equals     a b dst    dst = a == b ? 1 : 0
	 9  base       a          relative base += a
	99  halt

The robot

The robot starts at the origin facing north. Output values alternate between
a colour to paint the panel under the robot and a turn (0 for left, anything
else for right) followed by a move forward one panel. Input values report the
colour of the panel under the robot, 0 for panels never painted.

Usage

	hullpaint [flags] [image]

The image file holds comma separated integers; standard input is read when
it is omitted or "-". See -help for flags; any flag may also be given in a
TOML configuration file named by -config.
*/
package main
