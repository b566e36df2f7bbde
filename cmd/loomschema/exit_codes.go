package main

const (
	exitCodeSuccess        = 0
	exitCodeUsage          = 1
	exitCodeGenerateFailed = 2
)
