// Package md2docx converts a line-oriented Markdown dialect into Word
// documents laid out per Chinese official-document (公文) conventions.
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{Path: "通知.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.DocxPath)
//
// The intermediate HTML (result.HTMLPath) is written next to the source and
// kept. Use Input.HTMLOnly to stop there.
//
// # Conversion Pipeline
//
//  1. Decoding (UTF-8, GB18030, GBK) and line normalization
//  2. Parsing: one Element per line (headings, paragraphs, list items, blanks)
//  3. Rendering: per-kind CSS from the StyleSet plus tagged body markup
//  4. Handoff: Word, WPS Office or LibreOffice opens the HTML, sets 2 cm
//     margins and saves it as .docx
//
// Parse and Render are pure and can be used on their own:
//
//	elements := md2docx.Parse("# 标题\n正文")
//	html, err := md2docx.Render(md2docx.DefaultStyles(), elements, md2docx.RenderOptions{})
//
// # Styles
//
// Every element kind (h1, h2, h3, p, li) must have a style. DefaultStyles
// returns the conventional set: 黑体 headings and 仿宋_GB2312 body text at
// 16pt, with a two-character first-line indent on paragraphs.
//
//	styles := md2docx.DefaultStyles()
//	h1 := styles[md2docx.KindH1]
//	h1.Font.Size = 22
//	styles[md2docx.KindH1] = h1
//	conv, err := md2docx.NewConverter(md2docx.WithStyles(styles))
//
// # Host Applications
//
// Word and WPS are driven through COM automation and are only available on
// Windows. LibreOffice runs headless on every platform; set
// MD2DOCX_SOFFICE_BIN to point at a specific soffice binary. WithHost pins
// one backend.
package md2docx
