package report

// RunStyle captures inline run formatting.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int // half-points
	Color  string
	Fill   string
}

const (
	AccentColor   = "1E40AF"
	HeaderText    = "FFFFFF"
	BodyFill      = "F5F5DC"
	GridColor     = "D1D5DB"
	TitleSize     = 48
	HeadingSize   = 28
	BodySize      = 20
	TableHeadSize = 22
)

// StyleMap centralizes the formatting of report elements.
var StyleMap = map[string]RunStyle{
	"title": {
		Bold:  true,
		Size:  TitleSize,
		Color: AccentColor,
	},
	"heading": {
		Bold:  true,
		Size:  HeadingSize,
		Color: AccentColor,
	},
	"label": {
		Bold:  true,
		Size:  BodySize,
		Color: AccentColor,
	},
	"body": {
		Size: BodySize,
	},
	"strong": {
		Bold: true,
		Size: BodySize,
	},
	"tableHead": {
		Bold:  true,
		Size:  TableHeadSize,
		Color: HeaderText,
		Fill:  AccentColor,
	},
	"tableCell": {
		Size: BodySize,
		Fill: BodyFill,
	},
	"footer": {
		Italic: true,
		Size:   16,
	},
}
