package layout

// 该文件定义布局提案、已提交布局与画布规划，供布局计算、渲染与调试 JSON 共用。

// Size 以像素为单位。
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Fits 报告 s 是否不超过 limit。
func (s Size) Fits(limit Size) bool {
	return s.Width <= limit.Width && s.Height <= limit.Height
}

// OptionArea 是选项网格的排布结果。
type OptionArea struct {
	Count   int  `json:"count"`
	Columns int  `json:"columns"`
	Rows    int  `json:"rows"`
	Box     Size `json:"box"`  // 单个选项框
	Size    Size `json:"size"` // 含间距的整个选项区域
}

// Proposal 是某次假设性变更（新增选项或新目标）之后的全部尺寸。
// 它是一个值：要么被整体提交，要么被丢弃。
type Proposal struct {
	Exhibit     Size       `json:"exhibit"`
	Options     OptionArea `json:"options"`
	Total       Size       `json:"total"`
	OptionLines int        `json:"optionLines"` // 每个目标预留的行数
	TargetWidth int        `json:"targetWidth"` // 目标绑定的字符宽度 m
}

// CommittedLayout 是当前生效的尺寸，只能通过 Commit 整体替换。
type CommittedLayout struct {
	Proposal
	Valid bool `json:"valid"`
}

// Commit 用 p 替换全部尺寸。调用方须先通过 Limits.CheckProposal。
func (c *CommittedLayout) Commit(p Proposal) {
	*c = CommittedLayout{Proposal: p, Valid: true}
}

// Clear 回到尚未提交任何布局的状态。
func (c *CommittedLayout) Clear() { *c = CommittedLayout{} }

// Frame 是一张待渲染的图片：画布尺寸、每行文本的像素位置与边框。
type Frame struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Lines   []FrameLine `json:"lines"`
	Border  int         `json:"border"`
	Metrics Metrics     `json:"metrics"`
}

// FrameLine 是一行文本，X/Y 为该行左上角（像素）。
type FrameLine struct {
	Content string `json:"content"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}
