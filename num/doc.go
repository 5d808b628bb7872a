// Package num provides basic numeric helpers: clamping, sums and averages,
// factorials and primality testing.
//
// Functions that can be called with meaningless input return an error
// instead of a sentinel value, so "not prime" and "not a valid candidate"
// are distinguishable:
//
//	ok, err := num.IsPrime(1)
//	// ok == false, errors.Is(err, num.ErrNotPrimeCandidate)
package num
