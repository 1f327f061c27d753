/*
Package templating formats generated names for output.

A Renderer holds one text/template, parsed once, and executes it for every
generated name with a Data value. Besides the standard template builtins it
offers small helpers for case and arithmetic:

	{{inc .Index}}. {{title .Name}}
	{{upper .Name}} ({{len .Name}})

All Renderer methods are safe for concurrent use.
*/
package templating
