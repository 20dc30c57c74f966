/*
Package kalk evaluates arithmetic expressions over float64.

Grammar

	expression --> term ( ( "+" | "-" ) term )* ;
	term       --> factor ( ( "*" | "/" ) factor )* ;
	factor     --> ( "+" | "-" )? atom ;
	atom       --> NUMBER | "(" expression ")" ;
	NUMBER     --> DIGIT+ ( "." DIGIT+ )? ;

An input runs through three stages, each consuming the complete output of the
one before:

	Scanner      []rune       --> []*Token
	Parser       []*Token     --> *Expression
	Interpreter  *Expression  --> float64

Errors come in two classes:
+ *ScanError, a character that can not start any token. Fatal for the input.
+ *ParseError, a token the grammar does not allow at its position.

The interpreter has no error cases. Division by zero follows IEEE 754.
*/
package kalk
