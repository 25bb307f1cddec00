package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// lexer
	LexInfo               Code = 1000
	LexInvalidChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnfinishedEscape   Code = 1003
	LexInvalidEscape      Code = 1004
	LexTokenTooLong       Code = 1005
	LexNumberOverflow     Code = 1006
	LexInvalidUTF8        Code = 1007

	// parser
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnexpectedEOF       Code = 2002
	SynInvalidFnAttribute  Code = 2003
	SynExpectSyscallCount  Code = 2004
	SynBindingNotAllowed   Code = 2005
	SynExpectIdentifier    Code = 2006
	SynNestingTooDeep      Code = 2007
	SynExpectBuiltinName   Code = 2008
	SynExpectMemberName    Code = 2009
	SynUnexpectedExprToken Code = 2010

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexInvalidChar:         "Invalid character",
	LexUnterminatedString:  "Unterminated string",
	LexUnfinishedEscape:    "Unfinished escape sequence",
	LexInvalidEscape:       "Invalid escape sequence",
	LexTokenTooLong:        "Token too long",
	LexNumberOverflow:      "Number literal overflow",
	LexInvalidUTF8:         "Invalid UTF-8 in string literal",
	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynUnexpectedEOF:       "Unexpected end of file",
	SynInvalidFnAttribute:  "Invalid function attribute",
	SynExpectSyscallCount:  "Expected syscall operand count",
	SynBindingNotAllowed:   "Binding is only allowed at statement level",
	SynExpectIdentifier:    "Expect identifier",
	SynNestingTooDeep:      "Expression nested too deeply",
	SynExpectBuiltinName:   "Expect builtin name after '@'",
	SynExpectMemberName:    "Expect member name after '.'",
	SynUnexpectedExprToken: "Token cannot start an expression",
	IOLoadFileError:        "I/O load file error",
	IOCacheError:           "I/O cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
