package domain

// Tool identifies one of the calculators served by the suite.
type Tool string

const (
	ToolMortgage    Tool = "mortgage"
	ToolAntler      Tool = "antler"
	ToolStockOption Tool = "stock_option"
	ToolCRS         Tool = "crs"
	ToolFSWP        Tool = "fswp"
	ToolHELOC       Tool = "heloc"
	ToolSonnet      Tool = "sonnet"
	ToolSonnetScan  Tool = "sonnet_analysis"
	ToolSupplement  Tool = "supplement"
)

// Tools lists every calculator in display order.
func Tools() []Tool {
	return []Tool{
		ToolMortgage,
		ToolAntler,
		ToolStockOption,
		ToolCRS,
		ToolFSWP,
		ToolHELOC,
		ToolSonnet,
		ToolSonnetScan,
		ToolSupplement,
	}
}

func (t Tool) Valid() bool {
	for _, known := range Tools() {
		if t == known {
			return true
		}
	}
	return false
}
