// Package rop defines Result[T], the success/failure value every parser in
// this module produces.
//
// A Result is built with Success or Fail and inspected with IsSuccess,
// Result and Err (or Get). Each Result carries an id and a creation time so
// that failures can be correlated in logs.
//
// Combinators over Result live in package solo; the Option type lives in
// package option.
package rop
