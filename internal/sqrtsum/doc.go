// Package sqrtsum selects the Lane-Width Reducer for the host CPU.
//
// Kernels live under arch/ and register with registry.Global from init().
// SqrtSum resolves the best supported kernel once, on first use.
package sqrtsum
