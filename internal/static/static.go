package static

import _ "embed"

// Filename is the name of the landing page entry document.
const Filename = "index.html"

// IndexHTML contains the embedded Social Scheduler landing page.
//
//go:embed index.html
var IndexHTML string
