/*
Package forge implements the control logic blocks of the FORGE hardware
platform and a small synchronous bench to wire them together and run them
cycle by cycle.

The package has two layers. The lower layer is a set of pure value types
mirroring the platform's register transfer semantics: the scaling encoder
(EncodeState), the enable gate (GlobalEnable), the configuration update
guard (GuardState) and the controlled counter (CounterState), plus the
bit-exact register codec shared with host drivers (DecodeControl,
EncodeCounterStatus). None of these allocate, block or fail; a state plus an
input always yields exactly one next state.

The upper layer is the bench: blocks declare named control and status words
(BlockSpec), get wired together with connection strings and run under a
two-frame clock (Bench). Steppers read a coherent snapshot of the current
frame and write the next one, so an update is atomic per tick and partially
updated state is never observable. Ready-made blocks live in package
forgelib, test helpers in package forgetest.

Because every block is registered, a value crosses exactly one block per
tick. A source feeding a counter feeding a probe settles in three ticks, and
deeper assemblies add one tick per stage. Tests that pin exact traces account
for this priming prefix. Blocks can be grouped into composites with private
internal wires (Compose) or derived from tagged structs (MakeBlock).
*/
package forge
