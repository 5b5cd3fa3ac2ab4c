// SPDX-License-Identifier: MIT

// Package decimal is the arithmetic policy shared by every formula in decigrad.
//
// 🚀 What is it?
//
//	Every numeric value is an *apd.Decimal. Intermediate steps (sums,
//	products, differences) are exact: no digit is ever dropped before the
//	final step of a formula. The final step rounds to a fixed number of
//	significant digits and strips trailing zeros, so equal values compare
//	and print identically no matter how they were produced.
//
// ✨ Key pieces:
//   - Policy       - precision + rounding + strictness, passed explicitly
//   - Finalize     - round to precision, then strip trailing zeros
//   - Quo/DivCount - the only rounding operations; DivCount guards m == 0
//   - Add/Sub/Mul/Sum/Dot - exact helpers (no rounding)
//   - NativeExp/NativeLn - float64 exp/ln cast back into the decimal domain
//
// ⚙️ Usage:
//
//	p := decimal.DefaultPolicy() // 20 digits, half-up
//	avg, err := p.DivCount(decimal.MustParse("15"), 4)
//	// avg == 3.75
//
// Sentinels: ErrDivisionByZero, ErrInexact, ErrNonFinite, ErrParse,
// ErrLengthMismatch. Match them with errors.Is.
package decimal
