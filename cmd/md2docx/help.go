package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [flags] <input.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file into a Word document styled as a Chinese")
	fmt.Fprintln(w, "official document. <stem>.html is written next to the input and")
	fmt.Fprintln(w, "saved as .docx by Microsoft Word, WPS Office or LibreOffice.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --encoding <s>        Input encoding: utf-8, gb18030, gbk, auto")
	fmt.Fprintln(w, "      --html-only           Write the HTML file only")
	fmt.Fprintln(w, "      --open                Open the document after conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Host application:")
	fmt.Fprintln(w, "      --host <s>            auto, word, wps, libreoffice")
	fmt.Fprintln(w, "  -t, --timeout <d>         Conversion timeout (default 2m)")
	fmt.Fprintln(w, "      --check-app           Report installed word processors")
	fmt.Fprintln(w, "      --json                JSON output for --check-app")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --css <path>          Extra CSS appended after generated styles")
	fmt.Fprintln(w, "      --merge-lists         One list per run of consecutive items")
	fmt.Fprintln(w, "      --keep-numbering      Keep source numbers of ordered items")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --no-prompt           Never ask questions")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show conversion steps")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_HOST              Preferred host application")
	fmt.Fprintln(w, "  MD2DOCX_TIMEOUT           Conversion timeout")
	fmt.Fprintln(w, "  MD2DOCX_SOFFICE_BIN       LibreOffice soffice binary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 general, 2 usage/config/style, 3 input, 4 host")
}
