package extract

// ContentSelectors lists known content containers, most specific first.
// Order is the tie-break between selectors.
var ContentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".main-content",
	"#main-content",
	".post-content",
	".article-content",
	".entry-content",
	".content",
	`[itemprop="articleBody"]`,
	".story-body",
	".story-content",
	".news-article",
	".page-content",
	".post-body",
	".blog-post",
	".article-body",
	".markdown-body",
	".post",
	".single-post",
	"#content",
	".text-content",
}

// NoiseTerms are class and id substrings that mark page furniture.
var NoiseTerms = []string{
	"nav", "navigation", "menu", "sidebar", "footer", "header", "banner",
	"widget", "cookie", "popup", "modal", "ad", "ads", "promo",
	"comment", "social", "related", "share", "search",
}

// SkipTags are element kinds whose content is never rendered as text.
var SkipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"video":    true,
	"audio":    true,
	"svg":      true,
	"canvas":   true,
	"meta":     true,
	"template": true,
	"object":   true,
	"embed":    true,
	"head":     true,
	"link":     true,
}

// blockTags end a line in visible text.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true,
	"th": true, "tr": true, "ul": true,
}
