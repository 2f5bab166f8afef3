// Package htmldoc imports HTML documents into the block model.
//
// Import maps the structural elements of an HTML body onto blocks:
// headings, paragraphs, lists, tables (cell spans included), code fences
// and images. Navigation chrome, sidebars and boilerplate can be filtered
// out with a Filter level so a saved web page imports as its article
// content rather than the whole page shell.
package htmldoc
