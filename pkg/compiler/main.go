// Package compiler provides the C1 scanner and a recursive-descent syntax
// validator for C1 programs.
//
// Pipeline: C1 source → Lex → TokenStream → Parser → nil or *SyntaxError
//
// Grammar:
//
//	program             = ( function_definition )* EOF
//	function_definition = return_type ID "(" ")" "{" statement_list "}"
//	return_type         = "void" | "bool" | "int" | "float"
//	block               = "{" statement_list "}" | statement
//	statement_list      = ( block )*
//	statement           = if_statement
//	                    | "return" ( assignment )? ";"
//	                    | "printf" "(" assignment ")" ";"
//	                    | stat_assignment ";"
//	                    | function_call ";"
//	if_statement        = "if" "(" assignment ")" block
//	stat_assignment     = ID "=" assignment
//	function_call       = ID "(" ")"
//	assignment          = ( ID "=" assignment ) | expr
//	expr                = simp_expr ( ( "==" | "!=" | "<=" | ">=" | "<" | ">" ) simp_expr )?
//	simp_expr           = ( "-" )? term ( ( "+" | "-" | "||" ) term )*
//	term                = factor ( ( "*" | "/" | "&&" ) factor )*
//	factor              = CONST_INT | CONST_FLOAT | CONST_BOOLEAN
//	                    | function_call | ID | "(" assignment ")"
package compiler
