package mealy

// compile-time interface satisfaction checks live here since IOHMM is a
// concrete generic type with no interface of its own to assert against;
// this file instead pins the generic instantiation used throughout the
// package's tests so a signature drift fails to compile immediately.
var _ = New[int, int]
var _ = NewFromGenerators[int, int]
