/*
Package polykit provides numerical primitives for sparse multivariate
polynomials in a pure Go implementation: exact coefficient access over an
N-dimensional sparse representation, Horner-rule evaluation with extended
precision accumulation, calculus (partial derivatives, Taylor shifts,
Newton-Raphson root solving), polynomial algebra, and least-squares fitting
of sampled data.
*/
package polykit
