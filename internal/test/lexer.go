package test

import (
	"math/rand"
	"strings"
)

const validTokens = "PRINT;IF;THEN;ENDIF;WHILE;DO;ENDWHILE;FUNC;IS;USING;WITH;ENDFUNC;INT;FLOAT;TEXT;LABEL;GOTO;counter;total;x;\"this is a string\";\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\";\"\";123;321;45.6;+;-;*;/;%;=;==;!=;>;>=;<;<=;,;# comment\n;\n"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
