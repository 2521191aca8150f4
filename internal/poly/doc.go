// Package poly implements exact-shape polynomial arithmetic over float64
// coefficients for driving-point impedance functions in s.
//
// A [Polynomial] is an immutable value: Add, Sub, Mul and Divmod always
// return fresh instances, so callers may alias results freely. Coefficients
// are kept reduced (no trailing zero terms) and every structural decision
// (degree, zero test, printing) uses a single documented tolerance, so
// floating noise cannot change the shape of an expansion.
package poly
