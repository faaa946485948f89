package adapters

import _ "embed"

//go:embed preambles/header.h
var headerPreamble string

//go:embed preambles/loader.c
var loaderPreamble string
